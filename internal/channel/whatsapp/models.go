package whatsapp

import "strings"

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type mediaPayload struct {
	MessagingProduct string    `json:"messaging_product"`
	To               string    `json:"to"`
	Type             string    `json:"type"`
	Image            *mediaRef `json:"image,omitempty"`
	Video            *mediaRef `json:"video,omitempty"`
	Audio            *mediaRef `json:"audio,omitempty"`
	Document         *mediaRef `json:"document,omitempty"`
}

type mediaRef struct {
	Link string `json:"link"`
}

type mediaInfo struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// mediaType classifies a media URL by file extension, falling back to
// document for anything unrecognized.
func mediaType(url string) string {
	ext := strings.ToLower(url[strings.LastIndex(url, ".")+1:])
	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp":
		return "image"
	case "mp4", "webm", "3gp":
		return "video"
	case "mp3", "wav", "ogg", "m4a", "aac":
		return "audio"
	default:
		return "document"
	}
}
