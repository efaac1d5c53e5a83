package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"strings"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
)

// ErrInvalidImage is returned when an image payload cannot be decoded.
var ErrInvalidImage = errors.New("invalid image payload")

// Image feature names used by the optional image model.
const (
	FeatureImageWidth  = "width"
	FeatureImageHeight = "height"
	FeatureAspectRatio = "aspect_ratio"
	FeatureSizeKB      = "size_kb"
	FeatureMeanLuma    = "mean_luma"
	FeatureLumaStdDev  = "luma_stddev"
)

// ImageFeatureNames is the declared image schema.
var ImageFeatureNames = []string{
	FeatureImageWidth,
	FeatureImageHeight,
	FeatureAspectRatio,
	FeatureSizeKB,
	FeatureMeanLuma,
	FeatureLumaStdDev,
}

// maxLumaSamples bounds the pixel walk per axis.
const maxLumaSamples = 64

// Image is a decoded upload.
type Image struct {
	Data     []byte
	MimeType string
}

// DataURL renders the image as a data: URL for vision providers.
func (img Image) DataURL() string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// Base64 returns the raw base64 payload without a data: prefix.
func (img Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// DecodeImage accepts raw base64 or a data: URL and sniffs the MIME type.
func DecodeImage(payload string) (Image, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Image{}, fmt.Errorf("%w: empty", ErrInvalidImage)
	}
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients strip padding.
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return Image{}, fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, mime)
	}
	return Image{Data: data, MimeType: mime}, nil
}

// ImageFeatures decodes the pixels and computes size and brightness features.
func ImageFeatures(img Image) (*model.Features, error) {
	f := model.NewFeatures(ImageFeatureNames...)

	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return f, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	b := decoded.Bounds()
	w, h := b.Dx(), b.Dy()
	f.Set(FeatureImageWidth, float64(w))
	f.Set(FeatureImageHeight, float64(h))
	if h > 0 {
		f.Set(FeatureAspectRatio, float64(w)/float64(h))
	}
	f.Set(FeatureSizeKB, float64(len(img.Data))/1024)

	stepX := max(w/maxLumaSamples, 1)
	stepY := max(h/maxLumaSamples, 1)
	var sum, sumSq float64
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			r, g, bl, _ := decoded.At(x, y).RGBA()
			// Rec. 601 luma on 8-bit channels
			l := (0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(bl>>8))
			sum += l
			sumSq += l * l
			n++
		}
	}
	if n > 0 {
		mean := sum / float64(n)
		f.Set(FeatureMeanLuma, mean)
		f.Set(FeatureLumaStdDev, math.Sqrt(math.Max(sumSq/float64(n)-mean*mean, 0)))
	}

	return f, nil
}
