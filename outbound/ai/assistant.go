package ai

import (
	"agri-drone/common/constant"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"io"
	"net/http"
	"strings"
)

var ErrEmptyAnswer = errors.New("assistant returned no answer")

// AssistantOutbound answers customer questions through a generateContent
// compatible endpoint.
type AssistantOutbound struct {
	Cfg    *viper.Viper
	Client *http.Client

	endpoint string
	apiKey   string
	model    string
}

func (out *AssistantOutbound) Init() {
	out.endpoint = strings.TrimRight(out.Cfg.GetString("ai.endpoint"), "/")
	out.apiKey = out.Cfg.GetString("ai.api_key")
	out.model = out.Cfg.GetString("ai.model")

	if out.Client == nil {
		out.Client = &http.Client{Timeout: out.Cfg.GetDuration("ai.timeout")}
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

func (out *AssistantOutbound) Ask(ctx context.Context, question string, priceList string) (string, error) {
	prompt := fmt.Sprintf(constant.AssistantPromptTemplate, constant.AssistantKnowledgeBase, priceList, question)

	data, err := json.Marshal(generateRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("marshal assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", out.endpoint, out.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", out.apiKey)

	resp, err := out.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send assistant request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var body generateResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}

	for _, candidate := range body.Candidates {
		var sb strings.Builder
		for _, p := range candidate.Content.Parts {
			sb.WriteString(p.Text)
		}
		if answer := strings.TrimSpace(sb.String()); answer != "" {
			return answer, nil
		}
	}

	return "", ErrEmptyAnswer
}
