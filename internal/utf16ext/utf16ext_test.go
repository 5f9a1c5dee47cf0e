package utf16ext

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Run("往返转换保持内容不变", func(t *testing.T) {
		for _, s := range []string{"", "hello", "漢字", "a b\tc", `"quo"ted"`, "𝄞 代理对"} {
			got, err := DecodeStrict(Encode(s))
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	})

	t.Run("宽松解码与严格解码对有效输入一致", func(t *testing.T) {
		u := Encode("foo* [a-c] ?漢")
		strict, err := DecodeStrict(u)
		require.NoError(t, err)
		require.Equal(t, strict, DecodeLossy(u))
	})
}

func TestDecodeStrict(t *testing.T) {
	t.Run("未配对的高代理项返回错误", func(t *testing.T) {
		_, err := DecodeStrict([]uint16{'a', 0xD800, 'b'})
		require.ErrorIs(t, err, ErrInvalidUTF16)
	})

	t.Run("结尾处的高代理项返回错误", func(t *testing.T) {
		_, err := DecodeStrict([]uint16{'a', 0xDBFF})
		require.ErrorIs(t, err, ErrInvalidUTF16)
	})

	t.Run("孤立的低代理项返回错误", func(t *testing.T) {
		_, err := DecodeStrict([]uint16{0xDC00})
		require.ErrorIs(t, err, ErrInvalidUTF16)
	})

	t.Run("正确配对的代理对解码成功", func(t *testing.T) {
		// U+1D11E 音乐符号 G 谱号
		got, err := DecodeStrict([]uint16{0xD834, 0xDD1E})
		require.NoError(t, err)
		require.Equal(t, "𝄞", got)
	})
}

func TestDecodeLossy(t *testing.T) {
	t.Run("未配对的代理项替换为替换字符", func(t *testing.T) {
		require.Equal(t, "a�b", DecodeLossy([]uint16{'a', 0xD800, 'b'}))
	})
}
