package server

import (
	"encoding/json"
	"errors"

	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/model"
	"github.com/nireeksharajiv/Fake-News-Detection-Xcelerate-Hackathon/internal/pipeline"
)

// StringList decodes either a single string or a list of strings. null and ""
// decode as empty.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = nil
		if one != "" {
			*l = StringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	*l = many
	return nil
}

// ClassifyAllRequest accepts the key names sent by the extension and the web
// client. The first non-empty alias wins.
type ClassifyAllRequest struct {
	TweetText    string         `json:"tweet_text"`
	Text         string         `json:"text"`
	URLs         StringList     `json:"urls"`
	URL          StringList     `json:"url"`
	Profile      *model.Profile `json:"profile"`
	ImageBase64  string         `json:"image_base64"`
	Image        string         `json:"image"`
	ImageContext string         `json:"image_context"`
	Caption      string         `json:"caption"`
}

func (r ClassifyAllRequest) toPipeline() pipeline.ClassifyRequest {
	urls := r.URLs
	if len(urls) == 0 {
		urls = r.URL
	}
	return pipeline.ClassifyRequest{
		Text:     firstNonEmpty(r.TweetText, r.Text),
		URLs:     urls,
		Profile:  r.Profile,
		ImageB64: firstNonEmpty(r.ImageBase64, r.Image),
		Caption:  firstNonEmpty(r.ImageContext, r.Caption),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
