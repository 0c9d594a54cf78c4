package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := NotFound("文章不存在: a-404")
	require.EqualError(t, err, "404: 文章不存在: a-404")
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, StatusNotFound, StatusOf(NotFound("missing")))
	require.Equal(t, StatusBadRequest, StatusOf(Invalid("empty")))
	require.Equal(t, 0, StatusOf(errors.New("plain")))
	require.Equal(t, 0, StatusOf(nil))
}

func TestStatusOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("调用失败: %w", Unauthorized("请先登录"))
	require.Equal(t, StatusUnauthorized, StatusOf(wrapped))
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(NotFound("missing")))
	require.False(t, IsNotFound(Invalid("bad")))
	require.False(t, IsNotFound(nil))
}
