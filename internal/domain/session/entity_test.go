//go:build unit

package session_test

import (
	"testing"
	"time"

	"paylane/internal/domain/session"
	"paylane/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SessionBuilder)
	errIs  error
}

func TestSession(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, session.StatusPending, actual.Status())
		assert.False(t, actual.IsPaid())
		assert.Equal(t, int64(500), actual.Amount())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("リソースID検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "リソースIDなしNG",
				mutate: func(b *builder.SessionBuilder) { b.WithResourceID(uuid.Nil) },
				errIs:  session.ErrNilResourceID,
			},
		})
	})

	t.Run("ウォレット検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空のウォレットNG",
				mutate: func(b *builder.SessionBuilder) { b.WithUserWallet("") },
				errIs:  session.ErrEmptyUserWallet,
			},
			{
				name:   "空白のみのウォレットNG",
				mutate: func(b *builder.SessionBuilder) { b.WithUserWallet("   ") },
				errIs:  session.ErrEmptyUserWallet,
			},
		})
	})

	t.Run("金額検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "最小有効金額OK",
				mutate: func(b *builder.SessionBuilder) { b.WithAmount(1) },
			},
			{
				name:   "ゼロ金額NG",
				mutate: func(b *builder.SessionBuilder) { b.WithAmount(0) },
				errIs:  session.ErrNonPositiveAmount,
			},
			{
				name:   "負の金額NG",
				mutate: func(b *builder.SessionBuilder) { b.WithAmount(-500) },
				errIs:  session.ErrNonPositiveAmount,
			},
		})
	})

	t.Run("支払い遷移", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, err)
		require.False(t, sess.IsPaid())

		sess.MarkPaid()
		assert.True(t, sess.IsPaid())
		assert.Equal(t, session.StatusPaid, sess.Status())

		// 再度マークしても状態は変わらない
		sess.MarkPaid()
		assert.True(t, sess.IsPaid())
		assert.Equal(t, session.StatusPaid, sess.Status())
	})

	t.Run("金額は生成時にスナップショットされる", func(t *testing.T) {
		now := time.Now()
		resourceID := uuid.New()

		sess, err := session.NewSession(resourceID, "0xWALLET", 750, now)
		require.NoError(t, err)

		sess.MarkPaid()
		assert.Equal(t, int64(750), sess.Amount())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewSessionBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
