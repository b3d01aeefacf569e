// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger 依 LogMode 組裝 *slog.Logger。
//
// 引擎本身只接受注入的 *slog.Logger；要 JSON / Text / 自訂 Handler 都由呼叫端決定。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// enum LogMode
type LogMode uint8

const (
	ModeDev LogMode = iota
	ModeProd
	ModeSilence
)

// ParseMode 解析 dev | prod | silence（不分大小寫，接受 ModeDev 形式），未知值回傳 ModeDev 與 false。
func ParseMode(s string) (LogMode, bool) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "mode") {
	case "dev", "":
		return ModeDev, true
	case "prod":
		return ModeProd, true
	case "silence":
		return ModeSilence, true
	default:
		return ModeDev, false
	}
}

// NewDefaultLogger 以 LogMode 預設值建立 *slog.Logger
func NewDefaultLogger(mode LogMode) *slog.Logger {
	return slog.New(buildHandler(mode, nil))
}

// NewWriterLogger 與 NewDefaultLogger 相同，但輸出到 w（測試用）
func NewWriterLogger(mode LogMode, w io.Writer) *slog.Logger {
	return slog.New(buildHandler(mode, w))
}

// Silent 丟棄全部輸出的 logger
func Silent() *slog.Logger {
	return NewDefaultLogger(ModeSilence)
}

func buildHandler(mode LogMode, w io.Writer) slog.Handler {
	switch mode {
	case ModeProd:
		// 正式環境：JSON + stdout
		if w == nil {
			w = os.Stdout
		}
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		if w == nil {
			w = os.Stderr
		}
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
