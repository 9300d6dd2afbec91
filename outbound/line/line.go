package line

import (
	"agri-drone/common/contract"
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/spf13/viper"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	maxMessages     = 5
	maxQuickReplies = 13
	maxLabelRunes   = 20
)

type LineOutbound struct {
	Cfg    *viper.Viper
	Client *http.Client

	apiURL string
	token  string
	secret []byte
}

func (out *LineOutbound) Init() {
	out.apiURL = strings.TrimRight(out.Cfg.GetString("line.api_url"), "/")
	out.token = out.Cfg.GetString("line.channel_token")
	out.secret = []byte(out.Cfg.GetString("line.channel_secret"))

	if out.Client == nil {
		out.Client = &http.Client{Timeout: 10 * time.Second}
	}
}

// VerifySignature checks the X-Line-Signature header against the raw body.
func (out *LineOutbound) VerifySignature(body []byte, signature string) bool {
	if len(out.secret) == 0 || signature == "" {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, out.secret)
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}

func (out *LineOutbound) Reply(ctx context.Context, replyToken string, messages ...contract.LineMessage) error {
	return out.send(ctx, "/v2/bot/message/reply", replyBody{
		ReplyToken: replyToken,
		Messages:   buildMessages(messages),
	})
}

func (out *LineOutbound) Push(ctx context.Context, to string, messages ...contract.LineMessage) error {
	return out.send(ctx, "/v2/bot/message/push", pushBody{
		To:       to,
		Messages: buildMessages(messages),
	})
}

func (out *LineOutbound) send(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal line request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, out.apiURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build line request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+out.token)

	resp, err := out.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send line request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("line api %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return nil
}

type replyBody struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

type pushBody struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type textMessage struct {
	Type       string      `json:"type"`
	Text       string      `json:"text"`
	QuickReply *quickReply `json:"quickReply,omitempty"`
}

type quickReply struct {
	Items []quickReplyItem `json:"items"`
}

type quickReplyItem struct {
	Type   string        `json:"type"`
	Action messageAction `json:"action"`
}

type messageAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

func buildMessages(messages []contract.LineMessage) []textMessage {
	if len(messages) > maxMessages {
		messages = messages[:maxMessages]
	}

	out := make([]textMessage, 0, len(messages))
	for _, m := range messages {
		msg := textMessage{Type: "text", Text: m.Text}

		replies := m.QuickReplies
		if len(replies) > maxQuickReplies {
			replies = replies[:maxQuickReplies]
		}
		if len(replies) > 0 {
			msg.QuickReply = &quickReply{Items: make([]quickReplyItem, 0, len(replies))}
			for _, r := range replies {
				msg.QuickReply.Items = append(msg.QuickReply.Items, quickReplyItem{
					Type:   "action",
					Action: messageAction{Type: "message", Label: truncateRunes(r, maxLabelRunes), Text: r},
				})
			}
		}

		out = append(out, msg)
	}

	return out
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
