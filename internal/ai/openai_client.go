package ai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
)

const maxReplyTokens = 400

type OpenAIClient struct {
	client  *openai.Client
	model   string
	catalog *assistant.Catalog
	log     logrus.FieldLogger
}

func NewOpenAIClient(apiKey, model string, catalog *assistant.Catalog, log logrus.FieldLogger) *OpenAIClient {
	return NewOpenAIClientWithConfig(openai.DefaultConfig(apiKey), model, catalog, log)
}

func NewOpenAIClientWithConfig(cfg openai.ClientConfig, model string, catalog *assistant.Catalog, log logrus.FieldLogger) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		catalog: catalog,
		log:     log.WithField("component", "openai"),
	}
}

func (c *OpenAIClient) GetReply(ctx context.Context, p Prompt) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(p.History)+2)

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt(p.Persona, p.Tone, c.catalog),
	})
	for _, m := range p.History {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: p.Message,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  msgs,
		MaxTokens: maxReplyTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "openai chat completion")
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("empty choices")
		return "", ErrEmptyReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyReply
	}

	c.log.WithFields(logrus.Fields{
		"model":  c.model,
		"tokens": resp.Usage.TotalTokens,
	}).Debug("reply received")

	return reply, nil
}
