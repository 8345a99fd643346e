package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/iburimskiy/planet-shader/internal/config"
	"github.com/iburimskiy/planet-shader/internal/dispatch"
)

// Result describes one finished load, after it has been applied to the bank.
type Result struct {
	Slot     Slot
	Source   string
	Err      error
	Reverted bool // the slot went back to its default
}

// Loader runs image loads as background tasks and applies their outcome to
// the bank on the game goroutine. Loads are never cancelled: when two loads
// for one slot overlap, whichever completes last is what the slot shows.
type Loader struct {
	bank   *Bank
	queue  *dispatch.Queue
	client *http.Client

	// Notify shows a blocking message. It runs on the task goroutine.
	Notify func(msg string)
	// OnResult observes every applied load on the game goroutine.
	OnResult func(Result)
}

func NewLoader(bank *Bank, queue *dispatch.Queue, client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: config.FetchTimeout}
	}
	return &Loader{bank: bank, queue: queue, client: client}
}

// LoadFS reads name from fsys and decodes it, such as a dropped file. The
// read happens on the task goroutine. Non-image data reverts the slot to its
// default.
func (l *Loader) LoadFS(slot Slot, fsys fs.FS, name string) {
	size := l.bank.Size()
	l.queue.Go(func() func() {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			err = fmt.Errorf("texture: read %s: %w", name, err)
			return func() { l.apply(slot, name, nil, err, false) }
		}
		img, err := Decode(name, data, size)
		return func() { l.apply(slot, name, img, err, true) }
	})
}

// LoadFile reads and decodes a local file, such as one chosen in a dialog.
func (l *Loader) LoadFile(slot Slot, filename string) {
	size := l.bank.Size()
	l.queue.Go(func() func() {
		img, err := readFile(filename, size)
		return func() { l.apply(slot, filename, img, err, true) }
	})
}

// LoadURL fetches and decodes an image. Any failure leaves the slot as it
// was and notifies the user.
func (l *Loader) LoadURL(slot Slot, rawURL string) {
	size := l.bank.Size()
	l.queue.Go(func() func() {
		img, err := fetchImage(context.Background(), l.client, rawURL, size)
		if err != nil && l.Notify != nil {
			l.Notify(FetchFailedMessage)
		}
		return func() { l.apply(slot, rawURL, img, err, false) }
	})
}

func (l *Loader) apply(slot Slot, source string, img *image.RGBA, err error, revertOnReject bool) {
	res := Result{Slot: slot, Source: source, Err: err}
	switch {
	case err == nil:
		l.bank.Set(slot, img)
		log.Printf("texture: %s <- %s", slot, source)
	case revertOnReject && errors.Is(err, ErrNotImage):
		l.bank.Reset(slot)
		res.Reverted = true
		log.Printf("texture: %s reverted to default: %v", slot, err)
	default:
		log.Printf("texture: %s unchanged: %v", slot, err)
	}
	if l.OnResult != nil {
		l.OnResult(res)
	}
}

// LoadSource loads a startup image synchronously from a path or URL.
func LoadSource(ctx context.Context, client *http.Client, src string, size image.Point) (*image.RGBA, error) {
	if config.IsURL(src) {
		return fetchImage(ctx, client, src, size)
	}
	return readFile(src, size)
}

func readFile(filename string, size image.Point) (*image.RGBA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", filename, err)
	}
	return Decode(filename, data, size)
}

// fetchImage reports every failure, including undecodable content, as ErrFetch.
func fetchImage(ctx context.Context, client *http.Client, rawURL string, size image.Point) (*image.RGBA, error) {
	data, err := Fetch(ctx, client, rawURL)
	if err != nil {
		return nil, err
	}

	name := rawURL
	if u, perr := url.Parse(rawURL); perr == nil {
		name = path.Base(u.Path)
	}
	img, err := Decode(name, data, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return img, nil
}
