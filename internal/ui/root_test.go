package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/juice-tracker/internal/config"
	"github.com/ytget/juice-tracker/internal/listdiff"
	"github.com/ytget/juice-tracker/internal/model"
	"github.com/ytget/juice-tracker/internal/store"
)

func newTestRootUI(t *testing.T, seed ...model.Juice) (*RootUI, *store.MemoryStore) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	s := store.NewMemoryStore()
	for _, j := range seed {
		_, err := s.Persist(context.Background(), j)
		require.NoError(t, err)
	}
	return NewRootUI(w, s, config.NewSettings(app)), s
}

func TestRootUILoadsStoredJuices(t *testing.T) {
	ui, _ := newTestRootUI(t,
		model.Juice{Name: "Apple", Description: "Tasty", Color: model.ColorRed, Rating: 4},
		model.Juice{Name: "Pear", Description: "Grainy", Color: model.ColorYellow, Rating: 2},
	)

	juices := ui.Juices()
	require.Len(t, juices, 2)
	assert.Equal(t, "Apple", juices[0].Name)
	assert.Equal(t, "Pear", juices[1].Name)
	assert.Equal(t, 2, ui.juiceList.Length())
	assert.False(t, ui.emptyLabel.Visible())
}

func TestRootUIEmptyState(t *testing.T) {
	ui, _ := newTestRootUI(t)
	assert.Empty(t, ui.Juices())
	assert.True(t, ui.emptyLabel.Visible())
}

func TestRootUIFollowsStoreUpdates(t *testing.T) {
	ui, s := newTestRootUI(t, model.Juice{Name: "Apple", Description: "Tasty", Color: model.ColorRed})
	ctx := context.Background()

	saved, err := s.Persist(ctx, model.Juice{Name: "Kiwi", Description: "Sour", Color: model.ColorGreen, Rating: 1})
	require.NoError(t, err)
	require.Len(t, ui.Juices(), 2)

	saved.Rating = 5
	_, err = s.Persist(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, 5, ui.Juices()[1].Rating)

	ui.deleteJuice(saved.ID)
	require.Len(t, ui.Juices(), 1)
	assert.Equal(t, "Apple", ui.Juices()[0].Name)
}

func TestRootUIApplyRowsSummaries(t *testing.T) {
	apple := model.Juice{ID: 1, Name: "Apple", Description: "Tasty", Color: model.ColorRed}
	pear := model.Juice{ID: 2, Name: "Pear", Description: "Grainy", Color: model.ColorYellow}
	ui, _ := newTestRootUI(t)

	summary := ui.applyRows([]model.Juice{apple, pear})
	assert.Equal(t, listdiff.Summary{Inserts: 2}, summary)

	edited := pear
	edited.Rating = 3
	summary = ui.applyRows([]model.Juice{apple, edited})
	assert.Equal(t, listdiff.Summary{Updates: 1}, summary)
	assert.False(t, summary.Structural())

	summary = ui.applyRows([]model.Juice{edited, apple})
	assert.Equal(t, 1, summary.Moves)
	assert.Equal(t, []model.Juice{edited, apple}, ui.Juices())

	summary = ui.applyRows([]model.Juice{edited, apple})
	assert.Equal(t, listdiff.Summary{}, summary)
}

func TestRootUIEntryDialogLifecycle(t *testing.T) {
	ui, s := newTestRootUI(t)

	d := ui.ShowEntryDialog(0)
	require.NotNil(t, d)
	assert.Same(t, d, ui.ShowEntryDialog(0), "only one session at a time")

	test.Type(d.nameEntry, "Apple")
	test.Type(d.descriptionEntry, "Tasty")
	test.Tap(d.saveBtn)

	assert.Nil(t, ui.entryDialog)
	juices, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, juices, 1)
	assert.Equal(t, juices, ui.Juices())
}

func TestRootUILanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.onLanguageChange("pt")
	assert.Equal(t, "pt", ui.settings.GetLanguage())
	assert.Equal(t, "Diário de Sucos", ui.window.Title())
	assert.Contains(t, ui.addBtn.Text, "Adicionar suco")
}
