package note

import (
	"context"
	"testing"
	"time"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	// given
	service := NewNoteServiceImpl(ledger.NewStore(ledger.NewData(), nil))
	ym := month.YearMonth{Year: 2024, Month: time.June}

	// when
	require.NoError(t, service.Set(context.Background(), ym, "remember the insurance renewal"))

	// then
	text, err := service.Get(context.Background(), ym)
	require.NoError(t, err)
	assert.Equal(t, "remember the insurance renewal", text)

	other, err := service.Get(context.Background(), month.YearMonth{Year: 2024, Month: time.July})
	require.NoError(t, err)
	assert.Empty(t, other, "notes are per month")
}

func TestSet_EmptyTextClearsEntry(t *testing.T) {
	// given
	store := ledger.NewStore(ledger.NewData(), nil)
	service := NewNoteServiceImpl(store)
	ym := month.YearMonth{Year: 2024, Month: time.June}
	require.NoError(t, service.Set(context.Background(), ym, "something"))

	// when
	require.NoError(t, service.Set(context.Background(), ym, ""))

	// then
	store.View(func(d *ledger.Data) {
		_, ok := d.NotesByMonth[ym.Key()]
		assert.False(t, ok, "cleared notes leave no empty entries behind")
	})
}
