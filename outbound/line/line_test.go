package line

import (
	"agri-drone/common/contract"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type LineOutboundTestSuite struct {
	suite.Suite

	Server   *httptest.Server
	Outbound *LineOutbound

	lastPath string
	lastAuth string
	lastBody []byte
	status   int
}

func (s *LineOutboundTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastAuth = r.Header.Get("Authorization")
		s.lastBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(`{}`))
	}))

	cfg := viper.New()
	cfg.Set("line.api_url", s.Server.URL+"/")
	cfg.Set("line.channel_token", "token-1")
	cfg.Set("line.channel_secret", "secret-1")

	s.Outbound = &LineOutbound{Cfg: cfg}
	s.Outbound.Init()
}

func (s *LineOutboundTestSuite) TearDownTest() {
	s.Server.Close()
}

func TestLineOutboundTestSuite(t *testing.T) {
	suite.Run(t, new(LineOutboundTestSuite))
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *LineOutboundTestSuite) TestVerifySignature() {
	body := []byte(`{"events":[]}`)

	tests := []struct {
		name      string
		signature string
		expected  bool
	}{
		{name: "valid", signature: sign("secret-1", body), expected: true},
		{name: "wrong secret", signature: sign("other", body), expected: false},
		{name: "not base64", signature: "%%%", expected: false},
		{name: "empty", signature: "", expected: false},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.Outbound.VerifySignature(body, tc.signature))
		})
	}
}

func (s *LineOutboundTestSuite) TestReply() {
	err := s.Outbound.Reply(context.Background(), "reply-token", contract.LineMessage{
		Text:         "เลือกชนิดพืช",
		QuickReplies: []string{"ข้าว", "ชื่อที่ยาวมากกว่ายี่สิบตัวอักษรแน่นอน"},
	})
	s.Require().NoError(err)

	s.Equal("/v2/bot/message/reply", s.lastPath)
	s.Equal("Bearer token-1", s.lastAuth)

	var body replyBody
	s.Require().NoError(json.Unmarshal(s.lastBody, &body))
	s.Equal("reply-token", body.ReplyToken)
	s.Require().Len(body.Messages, 1)
	s.Equal("text", body.Messages[0].Type)
	s.Require().NotNil(body.Messages[0].QuickReply)
	s.Require().Len(body.Messages[0].QuickReply.Items, 2)

	long := body.Messages[0].QuickReply.Items[1].Action
	s.Len([]rune(long.Label), maxLabelRunes)
	s.Equal("ชื่อที่ยาวมากกว่ายี่สิบตัวอักษรแน่นอน", long.Text)
}

func (s *LineOutboundTestSuite) TestPush() {
	err := s.Outbound.Push(context.Background(), "U123", contract.LineMessage{Text: "ok"})
	s.Require().NoError(err)

	s.Equal("/v2/bot/message/push", s.lastPath)

	var body pushBody
	s.Require().NoError(json.Unmarshal(s.lastBody, &body))
	s.Equal("U123", body.To)
	s.Nil(body.Messages[0].QuickReply)
}

func (s *LineOutboundTestSuite) TestUpstreamError() {
	s.status = http.StatusBadRequest

	err := s.Outbound.Push(context.Background(), "U123", contract.LineMessage{Text: "ok"})
	s.Error(err)
}
