package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmathew/go-giftsmart/internal/config"
	"github.com/dmathew/go-giftsmart/internal/gifts"
	"github.com/dmathew/go-giftsmart/internal/greet"
	"github.com/dmathew/go-giftsmart/internal/recur"
	"github.com/dmathew/go-giftsmart/internal/store"
)

// newInstantService strips the simulated catalog latency so tests run fast.
func newInstantService() *gifts.Service {
	svc := gifts.NewService(recur.RealClock{})
	svc.CatalogDelay = 0
	svc.OrderDelay = 0
	return svc
}

func TestRunECard(t *testing.T) {
	st := store.New(&store.MemStorage{})
	st.Add(store.Entry{
		ID:                 "e1",
		Name:               "Carol",
		Date:               time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		CloseFriend:        true,
		PreferredCardStyle: "Flowers",
		Notes:              "Loves tulips",
	})

	var out bytes.Buffer
	err := runECard(context.Background(), st, greet.NewTranslator("en"), newInstantService(), "e1", &out)

	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "🌸 Happy Birthday Carol! 🌸")
	assert.Contains(t, text, "Loves tulips")
	assert.Contains(t, text, config.ECardGiftHeader)
	assert.Contains(t, text, "Amazon", "popular brands are suggested")
	assert.NotContains(t, text, "Grubhub", "non-popular brands are not suggested")
}

func TestRunECardUnknownID(t *testing.T) {
	st := store.New(&store.MemStorage{})

	var out bytes.Buffer
	err := runECard(context.Background(), st, greet.NewTranslator("en"), newInstantService(), "ghost", &out)

	require.Error(t, err)
	assert.EqualError(t, err, config.ErrEntryNotFound)
	assert.Empty(t, out.String(), "nothing is printed for a missing entry")
}
