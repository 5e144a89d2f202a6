//go:build integration

package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/namelist"
	"github.com/fwojciec/namelist/crawl"
	"github.com/fwojciec/namelist/goquery"
	namelisthttp "github.com/fwojciec/namelist/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalker_Integration_FirstSurname(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	w := &crawl.Walker{
		BaseURL:   namelist.SurnameBaseURL,
		Fetcher:   namelisthttp.NewFetcher(),
		Extractor: goquery.NewExtractor(),
	}

	for name, err := range w.Walk(ctx) {
		require.NoError(t, err)
		assert.Equal(t, namelist.Name{
			Text:        "AAFJES",
			Usage:       "Dutch",
			Description: `Means "son of AAFJE".`,
		}, name)
		break
	}
}
