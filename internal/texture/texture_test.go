package texture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ftrvxmtrx/tga"

	"github.com/iburimskiy/planet-shader/internal/dispatch"
)

var testSize = image.Pt(16, 8)

func solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: testSize})
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestBank() *Bank {
	return NewBank([SlotCount]*image.RGBA{
		solid(color.RGBA{R: 10, A: 255}),
		solid(color.RGBA{G: 20, A: 255}),
		solid(color.RGBA{B: 30, A: 255}),
		solid(color.RGBA{R: 40, G: 40, A: 255}),
	})
}

func snapshot(b *Bank) [SlotCount][]byte {
	var out [SlotCount][]byte
	for _, s := range Slots {
		out[s] = append([]byte(nil), b.Image(s).Pix...)
	}
	return out
}

func TestBankReplaceIsolatesSlots(t *testing.T) {
	for _, target := range Slots {
		t.Run(target.String(), func(t *testing.T) {
			b := newTestBank()
			before := snapshot(b)
			versions := [SlotCount]uint64{}
			for _, s := range Slots {
				versions[s] = b.Version(s)
			}

			b.Set(target, solid(color.RGBA{R: 200, G: 200, B: 200, A: 255}))

			after := snapshot(b)
			for _, s := range Slots {
				if s == target {
					if bytes.Equal(before[s], after[s]) {
						t.Errorf("%s: expected new pixels", s)
					}
					if b.Version(s) == versions[s] {
						t.Errorf("%s: expected version bump", s)
					}
					continue
				}
				if !bytes.Equal(before[s], after[s]) {
					t.Errorf("%s changed when %s was replaced", s, target)
				}
				if b.Version(s) != versions[s] {
					t.Errorf("%s version changed when %s was replaced", s, target)
				}
			}
		})
	}
}

func TestBankReset(t *testing.T) {
	b := newTestBank()
	def := b.Image(SlotNight)
	b.Set(SlotNight, solid(color.RGBA{A: 255}))
	if b.IsDefault(SlotNight) {
		t.Fatal("Expected night to be replaced")
	}
	b.Reset(SlotNight)
	if !b.IsDefault(SlotNight) || b.Image(SlotNight) != def {
		t.Error("Expected night back on its default")
	}
	if b.Size() != testSize {
		t.Errorf("Expected size %v, got %v", testSize, b.Size())
	}
}

func TestMIMEType(t *testing.T) {
	pngData := encodePNG(t, solid(color.RGBA{A: 255}))
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"day.png", nil, "image/png"},
		{"DAY.JPG", nil, "image/jpeg"},
		{"clouds.tga", nil, "image/x-tga"},
		{"earth.webp", nil, "image/webp"},
		{"noext", pngData, "image/png"},
		{"noext", []byte("hello world"), "text/plain; charset=utf-8"},
	}
	for _, tt := range tests {
		if got := MIMEType(tt.name, tt.data); got != tt.want {
			t.Errorf("MIMEType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	data := encodePNG(t, src)

	img, err := Decode("map.png", data, testSize)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds().Size() != testSize {
		t.Errorf("Expected %v, got %v", testSize, img.Bounds().Size())
	}

	if _, err := Decode("notes.txt", []byte("not a picture"), testSize); !errors.Is(err, ErrNotImage) {
		t.Errorf("Expected ErrNotImage, got %v", err)
	}
	if _, err := Decode("broken.png", []byte("garbage"), testSize); err == nil || errors.Is(err, ErrNotImage) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestDecodeFormats(t *testing.T) {
	want := color.RGBA{R: 200, G: 120, B: 40, A: 255}
	src := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = want.R, want.G, want.B, want.A
	}

	var pngBuf, jpegBuf, tgaBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(&jpegBuf, src, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatal(err)
	}
	if err := tga.Encode(&tgaBuf, src); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"png", "day.png", pngBuf.Bytes()},
		{"jpeg", "day.jpg", jpegBuf.Bytes()},
		{"jpeg without extension", "day", jpegBuf.Bytes()},
		{"jpeg named png", "day.png", jpegBuf.Bytes()},
		{"tga", "day.tga", tgaBuf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.file, tt.data, testSize)
			if err != nil {
				t.Fatalf("Decode(%s): %v", tt.file, err)
			}
			got := img.RGBAAt(testSize.X/2, testSize.Y/2)
			if !near(got, want, 8) {
				t.Errorf("Expected about %v, got %v", want, got)
			}
		})
	}
}

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) <= tol && int(y)-int(x) <= tol }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestPlaceholders(t *testing.T) {
	maps := Placeholders(testSize)
	for _, s := range Slots {
		if maps[s].Bounds().Size() != testSize {
			t.Errorf("%s: expected %v, got %v", s, testSize, maps[s].Bounds().Size())
		}
	}
	if c := maps[SlotNormal].RGBAAt(3, 3); c != (color.RGBA{R: 128, G: 128, B: 255, A: 255}) {
		t.Errorf("Expected a flat normal map, got %v", c)
	}
}

func TestFetch(t *testing.T) {
	data := encodePNG(t, solid(color.RGBA{A: 255}))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	got, err := Fetch(context.Background(), srv.Client(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Fetched bytes differ")
	}

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/missing.png"); !errors.Is(err, ErrFetch) {
		t.Errorf("Expected ErrFetch for 404, got %v", err)
	}
	if _, err := Fetch(context.Background(), srv.Client(), "http://127.0.0.1:0/x.png"); !errors.Is(err, ErrFetch) {
		t.Errorf("Expected ErrFetch for refused connection, got %v", err)
	}
}

type recorder struct {
	results  []Result
	messages []string
}

func newTestLoader(b *Bank, q *dispatch.Queue, client *http.Client) (*Loader, *recorder) {
	rec := &recorder{}
	l := NewLoader(b, q, client)
	l.Notify = func(msg string) { rec.messages = append(rec.messages, msg) }
	l.OnResult = func(r Result) { rec.results = append(rec.results, r) }
	return l, rec
}

func settle(q *dispatch.Queue) {
	q.Wait()
	q.Drain()
}

func TestLoaderDroppedImage(t *testing.T) {
	b := newTestBank()
	q := dispatch.NewQueue()
	l, rec := newTestLoader(b, q, nil)
	before := snapshot(b)

	dropped := fstest.MapFS{"earth.png": {Data: encodePNG(t, solid(color.RGBA{R: 255, A: 255}))}}
	l.LoadFS(SlotDay, dropped, "earth.png")
	settle(q)

	if len(rec.results) != 1 || rec.results[0].Err != nil {
		t.Fatalf("Unexpected results %+v", rec.results)
	}
	if got := b.Image(SlotDay).RGBAAt(0, 0); got.R < 250 {
		t.Errorf("Expected red day map, got %v", got)
	}
	after := snapshot(b)
	for _, s := range []Slot{SlotNight, SlotNormal, SlotSpecular} {
		if !bytes.Equal(before[s], after[s]) {
			t.Errorf("%s changed after a day drop", s)
		}
	}
}

func TestLoaderDroppedNonImageReverts(t *testing.T) {
	b := newTestBank()
	q := dispatch.NewQueue()
	l, rec := newTestLoader(b, q, nil)

	b.Set(SlotSpecular, solid(color.RGBA{R: 1, A: 255}))
	l.LoadFS(SlotSpecular, fstest.MapFS{"readme.txt": {Data: []byte("plain text")}}, "readme.txt")
	settle(q)

	if !b.IsDefault(SlotSpecular) {
		t.Error("Expected specular to revert to its default")
	}
	if len(rec.results) != 1 || !rec.results[0].Reverted {
		t.Errorf("Expected one reverted result, got %+v", rec.results)
	}
	if len(rec.messages) != 0 {
		t.Errorf("Dropped files must not raise a notification, got %v", rec.messages)
	}
}

func TestLoaderDroppedUnreadableLeavesSlot(t *testing.T) {
	b := newTestBank()
	q := dispatch.NewQueue()
	l, rec := newTestLoader(b, q, nil)

	custom := solid(color.RGBA{B: 7, A: 255})
	b.Set(SlotNormal, custom)
	l.LoadFS(SlotNormal, fstest.MapFS{}, "gone.png")
	settle(q)

	if b.Image(SlotNormal) != custom {
		t.Error("An unreadable drop must leave the slot unchanged")
	}
	if len(rec.results) != 1 || rec.results[0].Err == nil || rec.results[0].Reverted {
		t.Errorf("Expected one failed, unreverted result, got %+v", rec.results)
	}
}

func TestLoaderFile(t *testing.T) {
	b := newTestBank()
	q := dispatch.NewQueue()
	l, rec := newTestLoader(b, q, nil)

	name := filepath.Join(t.TempDir(), "normal.png")
	if err := os.WriteFile(name, encodePNG(t, solid(color.RGBA{R: 128, G: 128, B: 255, A: 255})), 0o644); err != nil {
		t.Fatal(err)
	}
	l.LoadFile(SlotNormal, name)
	l.LoadFile(SlotNight, filepath.Join(t.TempDir(), "missing.png"))
	settle(q)

	if len(rec.results) != 2 {
		t.Fatalf("Expected 2 results, got %+v", rec.results)
	}
	if b.IsDefault(SlotNormal) {
		t.Error("Expected normal map to be replaced")
	}
	if !b.IsDefault(SlotNight) {
		t.Error("A missing file must leave night unchanged")
	}
}

func TestLoaderURL(t *testing.T) {
	data := encodePNG(t, solid(color.RGBA{G: 255, A: 255}))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/night.png":
			w.Write(data)
		case "/page.html":
			w.Write([]byte("<html></html>"))
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		b := newTestBank()
		q := dispatch.NewQueue()
		l, rec := newTestLoader(b, q, srv.Client())
		l.LoadURL(SlotNight, srv.URL+"/night.png")
		settle(q)
		if b.IsDefault(SlotNight) {
			t.Error("Expected night to be replaced")
		}
		if len(rec.messages) != 0 {
			t.Errorf("Unexpected notification %v", rec.messages)
		}
	})

	for _, p := range []string{"/forbidden.png", "/page.html"} {
		t.Run(p, func(t *testing.T) {
			b := newTestBank()
			q := dispatch.NewQueue()
			l, rec := newTestLoader(b, q, srv.Client())
			prev := b.Image(SlotDay)
			b.Set(SlotDay, prev)
			version := b.Version(SlotDay)

			l.LoadURL(SlotDay, srv.URL+p)
			settle(q)

			if b.Image(SlotDay) != prev || b.Version(SlotDay) != version {
				t.Error("A failed fetch must leave the slot unchanged")
			}
			if len(rec.messages) != 1 || rec.messages[0] != FetchFailedMessage {
				t.Errorf("Expected one fetch notification, got %v", rec.messages)
			}
			if len(rec.results) != 1 || !errors.Is(rec.results[0].Err, ErrFetch) {
				t.Errorf("Expected ErrFetch result, got %+v", rec.results)
			}
		})
	}
}
