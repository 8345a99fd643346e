package texture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrFetch reports a URL that could not be downloaded.
var ErrFetch = errors.New("image source could not be fetched")

// FetchFailedMessage is shown to the user when a URL cannot be loaded.
const FetchFailedMessage = "Image source could not be fetched.\n" +
	"Try downloading the image and dropping the file on the slot instead."

const maxFetchBytes = 64 << 20

// Fetch downloads url.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("texture: fetch %s: %w: %v", url, ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("texture: fetch %s: %w: %v", url, ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("texture: fetch %s: %w: %s", url, ErrFetch, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("texture: fetch %s: %w: %v", url, ErrFetch, err)
	}
	return data, nil
}
