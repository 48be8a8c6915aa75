package pdfsurface

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// AssetType is the registered form of an asset.
type AssetType string

const (
	TypePNG  AssetType = "png"
	TypeJPEG AssetType = "jpg"
	TypeGIF  AssetType = "gif"
	TypePDF  AssetType = "pdf"
)

// MaxAssetSize bounds the bytes read from any asset source.
const MaxAssetSize = 16 << 20

// ErrUnsupportedAsset is returned for content that is neither a supported
// image nor a PDF.
var ErrUnsupportedAsset = errors.New("pdfsurface: unsupported asset format")

// AssetLoadError reports a letterhead or other asset that could not be
// fetched or decoded.
type AssetLoadError struct {
	Source string
	Err    error
}

func (e *AssetLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("pdfsurface: loading %s: unknown error", e.Source)
	}
	return fmt.Sprintf("pdfsurface: loading %s: %v", e.Source, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Asset is an image or PDF ready to be registered on a Surface.
type Asset struct {
	Source string
	Type   AssetType
	Data   []byte
}

// LoadAsset reads src, a file path or an http(s) URL, and normalizes it to a
// type fpdf can register. BMP, TIFF and WebP images are converted to PNG.
// client may be nil to use http.DefaultClient.
func LoadAsset(ctx context.Context, src string, client *http.Client) (*Asset, error) {
	data, err := fetch(ctx, src, client)
	if err != nil {
		return nil, &AssetLoadError{Source: src, Err: err}
	}
	a, err := DecodeAsset(src, data)
	if err != nil {
		return nil, &AssetLoadError{Source: src, Err: err}
	}
	return a, nil
}

// DecodeAsset sniffs data and returns it as an Asset.
func DecodeAsset(src string, data []byte) (*Asset, error) {
	switch kind := sniff(data); kind {
	case "image/png":
		return &Asset{Source: src, Type: TypePNG, Data: data}, nil
	case "image/jpeg":
		return &Asset{Source: src, Type: TypeJPEG, Data: data}, nil
	case "image/gif":
		return &Asset{Source: src, Type: TypeGIF, Data: data}, nil
	case "application/pdf":
		return &Asset{Source: src, Type: TypePDF, Data: data}, nil
	case "image/bmp", "image/tiff", "image/webp":
		img, err := decodeRaster(kind, data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", kind, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding png: %w", err)
		}
		return &Asset{Source: src, Type: TypePNG, Data: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAsset, kind)
	}
}

func sniff(data []byte) string {
	// DetectContentType does not know TIFF
	if bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")) {
		return "image/tiff"
	}
	kind := http.DetectContentType(data)
	if i := strings.IndexByte(kind, ';'); i >= 0 {
		kind = kind[:i]
	}
	return kind
}

func decodeRaster(kind string, data []byte) (image.Image, error) {
	r := bytes.NewReader(data)
	switch kind {
	case "image/bmp":
		return bmp.Decode(r)
	case "image/tiff":
		return tiff.Decode(r)
	default:
		return webp.Decode(r)
	}
}

func fetch(ctx context.Context, src string, client *http.Client) ([]byte, error) {
	u, err := url.Parse(src)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		f, err := os.Open(src)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readLimited(f)
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return readLimited(resp.Body)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAssetSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxAssetSize {
		return nil, fmt.Errorf("asset larger than %d bytes", MaxAssetSize)
	}
	return data, nil
}
