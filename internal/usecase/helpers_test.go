package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =====================
// 共通ヘルパー
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

// テスト用の固定時計
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

// テスト用の決め打ちID生成
type stubIDGen struct{ id string }

func (g *stubIDGen) NewID() string { return g.id }
