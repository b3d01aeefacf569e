// Package configs 內嵌預設遊戲設定檔，並提供從檔案或內嵌檔載入設定的入口。
package configs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// FS provides embedded default config YAMLs.
//
//go:embed *.yaml
var FS embed.FS

// DefaultName 預設設定檔檔名
const DefaultName = "gleamgrid.yaml"

// Load 讀取設定：path 為空時使用內嵌的預設檔；副檔名 .json 以 JSON 解析，其餘以 YAML 解析
func Load(path string) (*spec.GameSetting, error) {
	if path == "" {
		data, err := FS.ReadFile(DefaultName)
		if err != nil {
			return nil, errs.Wrap(err, "read embedded config err")
		}
		return spec.GetGameSettingByYAML(data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read config err")
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return spec.GetGameSettingByJSON(data)
	}
	return spec.GetGameSettingByYAML(data)
}
