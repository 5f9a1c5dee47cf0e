// Package utf16ext 提供 UTF-16 码元序列与 Go 字符串之间的转换扩展功能。
//
// Windows 的命令行缓冲区以 16 位码元的形式提供，其中可能包含未配对的
// 代理项。本包同时提供严格转换（遇到无效序列返回错误）和宽松转换
// （无效码元替换为 U+FFFD）两种方式。
package utf16ext

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

// ErrInvalidUTF16 表示码元序列不是有效的 UTF-16 编码。
var ErrInvalidUTF16 = errors.New("无效的 UTF-16 序列")

const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

// Encode 将字符串编码为 UTF-16 码元序列。
func Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeLossy 将码元序列解码为字符串，未配对的代理项替换为 U+FFFD。
func DecodeLossy(u []uint16) string {
	return string(utf16.Decode(u))
}

// DecodeStrict 将码元序列解码为字符串。
// 序列中存在未配对的代理项时返回包装了 [ErrInvalidUTF16] 的错误。
func DecodeStrict(u []uint16) (string, error) {
	for i := 0; i < len(u); i++ {
		switch c := u[i]; {
		case c >= surrHighMin && c <= surrHighMax:
			if i+1 >= len(u) || u[i+1] < surrLowMin || u[i+1] > surrLowMax {
				return "", fmt.Errorf("%w: 位置 %d 存在未配对的高代理项 %#04x", ErrInvalidUTF16, i, c)
			}
			i++
		case c >= surrLowMin && c <= surrLowMax:
			return "", fmt.Errorf("%w: 位置 %d 存在未配对的低代理项 %#04x", ErrInvalidUTF16, i, c)
		}
	}
	return string(utf16.Decode(u)), nil
}
