package utils

import (
	"errors"
	"fmt"
	"log"
	"time"

	"agazian/config"

	"github.com/go-resty/resty/v2"
)

const assistantSystemPrompt = "You are a friendly tutor for the Agazian platform, which teaches the Ge'ez language. " +
	"Answer questions about Ge'ez script, grammar and vocabulary. " +
	"When the learner writes in Amharic, answer in Amharic; otherwise answer in English. Keep answers short."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// fallbackReply is returned when no upstream model is configured or reachable
func fallbackReply(lang string) string {
	if lang == "am" {
		return "ይቅርታ፣ የኤአይ ረዳቱ አሁን አይገኝም። እባክዎ ቆየት ብለው ይሞክሩ።"
	}
	return "Sorry, the assistant is unavailable right now. Please try again later."
}

// AskAssistant relays a learner question to the configured chat-completion
// endpoint and returns the model's reply.
func AskAssistant(message, lang string) (string, error) {
	if config.AppConfig.AssistantAPIKey == "" || config.AppConfig.AssistantAPIURL == "" {
		return fallbackReply(lang), nil
	}

	client := resty.New().SetTimeout(30 * time.Second)
	var out chatResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.AppConfig.AssistantAPIKey).
		SetBody(chatRequest{
			Model: config.AppConfig.AssistantModel,
			Messages: []chatMessage{
				{Role: "system", Content: assistantSystemPrompt},
				{Role: "user", Content: message},
			},
		}).
		SetResult(&out).
		Post(config.AppConfig.AssistantAPIURL)
	if err != nil {
		log.Printf("Assistant request failed: %v", err)
		return fallbackReply(lang), err
	}
	if resp.IsError() {
		log.Printf("Assistant error (%d): %s", resp.StatusCode(), resp.String())
		return fallbackReply(lang), fmt.Errorf("assistant returned status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return fallbackReply(lang), errors.New("assistant returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
