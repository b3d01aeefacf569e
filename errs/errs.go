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

// Package errs 定義 gleamgrid 統一的錯誤型別與分級。
package errs

import (
	"errors"
	"fmt"
)

// ErrLevel : Error 分級，讓呼叫端知道問題嚴重程度
type ErrLevel uint8

const (
	None ErrLevel = iota
	Fatal
	Warn
	Log
)

var errLvMap = map[ErrLevel]string{
	None:  "",
	Fatal: "fatal",
	Warn:  "warn",
	Log:   "log",
}

// String 回傳分級名稱，未知分級回傳空字串。
func (l ErrLevel) String() string {
	return errLvMap[l]
}

// ErrOutOfRange 前置條件違反：索引或座標超出盤面範圍。
//
// 低層儲存（tribit / board）遇到越界會以 *E 包裝此哨兵後 panic；
// 對外入口（Game.Select）則以 Warn 等級回傳。兩者皆可用 errors.Is 判斷。
var ErrOutOfRange = errors.New("index out of range")

// E 是統一的錯誤型別。
// Message 為主訊息；Extra 為額外上下文；Cause 串接下層錯誤；ErrLv 為嚴重度。
type E struct {
	Message string
	Extra   string
	Cause   error
	ErrLv   ErrLevel
}

// Error 實作 error 介面。
func (e *E) Error() string {
	base := fmt.Sprintf("errlv=%s %s", e.ErrLv, e.Message)
	if e.Extra != "" {
		base += " | extra: " + e.Extra
	}
	if e.Cause != nil {
		base += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return base
}

// Unwrap 讓 errors.Is / errors.As 能夠向下展開。
func (e *E) Unwrap() error { return e.Cause }

func New(errLv ErrLevel, msg string) *E {
	return &E{Message: msg, ErrLv: errLv}
}

func NewFatal(msg string) *E {
	return &E{Message: msg, ErrLv: Fatal}
}

func NewWarn(msg string) *E {
	return &E{Message: msg, ErrLv: Warn}
}

func Fatalf(format string, a ...any) *E {
	return NewFatal(fmt.Sprintf(format, a...))
}

func Warnf(format string, a ...any) *E {
	return NewWarn(fmt.Sprintf(format, a...))
}

// OutOfRange 建立包裝 ErrOutOfRange 的錯誤，what 描述越界的對象（index / x / y）。
func OutOfRange(errLv ErrLevel, what string, got int, limit int) *E {
	return &E{
		Message: fmt.Sprintf("%s %d out of [0,%d)", what, got, limit),
		Cause:   ErrOutOfRange,
		ErrLv:   errLv,
	}
}

// Wrap 以給定訊息包裝底層錯誤。
//
// ErrLevel 規則：
//   - 若 cause 已經是 *E，沿用其 ErrLv。
//   - 否則（標準庫或三方依賴錯誤）一律視為 Fatal。
func Wrap(cause error, msg string) *E {
	errLv := Fatal
	if e, ok := AsErr(cause); ok {
		errLv = e.ErrLv
	}
	return &E{Message: msg, Cause: cause, ErrLv: errLv}
}

// WrapWithExtra 與 Wrap 相同，但附加上下文字串。
func WrapWithExtra(cause error, msg string, extra string) *E {
	r := Wrap(cause, msg)
	r.Extra = extra
	return r
}

func AsErr(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
