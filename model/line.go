package model

type LineWebhookRequest struct {
	Destination string      `json:"destination"`
	Events      []LineEvent `json:"events"`
}

type LineEvent struct {
	Type       string      `json:"type"`
	ReplyToken string      `json:"replyToken"`
	Source     LineSource  `json:"source"`
	Message    LineMessage `json:"message"`
}

type LineSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type LineMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Text string `json:"text"`
}

// LineSession is the chat booking progress kept between messages.
type LineSession struct {
	Step        string `json:"step"`
	CropType    string `json:"crop_type,omitempty"`
	SprayType   string `json:"spray_type,omitempty"`
	AreaSize    string `json:"area_size,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
