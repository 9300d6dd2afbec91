package contract

//go:generate mockgen -source=outbound.go -destination=mocks/outbound.go -package=mocks

import (
	"context"
	"io"
)

// SlipStore persists uploaded payment slips and returns the stored path.
// Remove deletes a slip whose booking update did not commit.
type SlipStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

type Assistant interface {
	Ask(ctx context.Context, question string, priceList string) (string, error)
}

// LineMessenger sends text messages through the LINE Messaging API.
type LineMessenger interface {
	Reply(ctx context.Context, replyToken string, messages ...LineMessage) error
	Push(ctx context.Context, to string, messages ...LineMessage) error
}

// LineSignatureVerifier checks that a webhook body was signed by the channel.
type LineSignatureVerifier interface {
	VerifySignature(body []byte, signature string) bool
}

// LineMessage is a text message with optional quick-reply labels.
type LineMessage struct {
	Text         string
	QuickReplies []string
}
