package gsheets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-orders/internal/order/repository"
	"household-orders/internal/order/repository/gsheets"
	pkgSheets "household-orders/pkg/gsheets"
	"household-orders/pkg/log"
)

type fakeValuesClient struct {
	values    [][]interface{}
	getErr    error
	updateErr error

	gotRange  string
	gotValues [][]interface{}
	updates   int
}

func (f *fakeValuesClient) GetValues(_ context.Context, _ string, rng string) ([][]interface{}, error) {
	f.gotRange = rng
	return f.values, f.getErr
}

func (f *fakeValuesClient) UpdateValues(_ context.Context, _ string, rng string, values [][]interface{}) (pkgSheets.UpdateResult, error) {
	f.updates++
	f.gotRange = rng
	f.gotValues = values
	if f.updateErr != nil {
		return pkgSheets.UpdateResult{}, f.updateErr
	}
	return pkgSheets.UpdateResult{UpdatedRows: len(values)}, nil
}

func TestRead(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		client := &fakeValuesClient{values: [][]interface{}{
			{" ID", "Prodotto ", "Data", "Consegnato"},
			{float64(1), "Latte", float64(45292), false},
			{float64(2), "Pane", "10/01/2024"},
		}}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		tbl, err := repo.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "'Ordini'", client.gotRange)
		assert.Equal(t, []string{" ID", "Prodotto ", "Data", "Consegnato"}, tbl.Header)
		require.Len(t, tbl.Rows, 2)
		assert.Equal(t, "Pane", tbl.Rows[1][1])
	})

	t.Run("empty sheet", func(t *testing.T) {
		repo := gsheets.New(&fakeValuesClient{}, "sheet-1", "Ordini", log.NewNop())

		tbl, err := repo.Read(context.Background())
		require.NoError(t, err)
		assert.True(t, tbl.IsEmpty())
	})

	t.Run("api failure", func(t *testing.T) {
		client := &fakeValuesClient{getErr: errors.New("quota exceeded")}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		_, err := repo.Read(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrFailedToRead)
	})

	t.Run("sheet name with quote", func(t *testing.T) {
		client := &fakeValuesClient{}
		repo := gsheets.New(client, "sheet-1", "Casa d'Alta", log.NewNop())

		_, err := repo.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "'Casa d''Alta'", client.gotRange)
	})
}

func TestOverwrite(t *testing.T) {
	t.Run("pads previous extent with blanks", func(t *testing.T) {
		client := &fakeValuesClient{values: [][]interface{}{
			{"ID", "Prodotto", "Data", "Consegnato", "Note"},
			{float64(1), "Latte", float64(45292), true},
			{float64(2), "Pane", float64(45293), false},
		}}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		err := repo.Overwrite(context.Background(), repository.Table{
			Header: []string{"ID", "Prodotto", "Data", "Consegnato"},
			Rows:   [][]interface{}{{2, "Pane", "2024-01-02", false}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, client.updates)
		assert.Equal(t, "'Ordini'!A1", client.gotRange)

		require.Len(t, client.gotValues, 3)
		assert.Equal(t, []interface{}{"ID", "Prodotto", "Data", "Consegnato", ""}, client.gotValues[0])
		assert.Equal(t, []interface{}{2, "Pane", "2024-01-02", false, ""}, client.gotValues[1])
		assert.Equal(t, []interface{}{"", "", "", "", ""}, client.gotValues[2])
	})

	t.Run("escapes formulas", func(t *testing.T) {
		client := &fakeValuesClient{}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		err := repo.Overwrite(context.Background(), repository.Table{
			Header: []string{"ID", "Prodotto"},
			Rows:   [][]interface{}{{1, "=IMPORTXML(\"x\")"}, {2, "-10% detersivo"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "'=IMPORTXML(\"x\")", client.gotValues[1][1])
		assert.Equal(t, "'-10% detersivo", client.gotValues[2][1])
	})

	t.Run("extent read failure writes nothing", func(t *testing.T) {
		client := &fakeValuesClient{getErr: errors.New("network down")}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		err := repo.Overwrite(context.Background(), repository.Table{Header: []string{"ID"}})
		assert.ErrorIs(t, err, repository.ErrFailedToOverwrite)
		assert.Equal(t, 0, client.updates)
	})

	t.Run("update failure", func(t *testing.T) {
		client := &fakeValuesClient{updateErr: errors.New("permission denied")}
		repo := gsheets.New(client, "sheet-1", "Ordini", log.NewNop())

		err := repo.Overwrite(context.Background(), repository.Table{Header: []string{"ID"}})
		assert.ErrorIs(t, err, repository.ErrFailedToOverwrite)
	})
}
