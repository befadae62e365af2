// Package gateway talks to the chat platform gateway, which owns the bot
// account and forwards user actions to the webhook.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"bytes"
	"cargobike/config"
	"cargobike/infras/otel"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ParseModeHTML = "HTML"

	maxErrorBody = 512
)

type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

type WebApp struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Message is a chat message with an optional inline keyboard, one button per row.
type Message struct {
	Text      string   `json:"text"`
	ParseMode string   `json:"parse_mode,omitempty"`
	Buttons   []Button `json:"buttons,omitempty"`
	WebApp    *WebApp  `json:"web_app,omitempty"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
}

type Client interface {
	Send(ctx context.Context, chatID int64, message Message) (messageID string, err error)
	Edit(ctx context.Context, chatID int64, messageID string, message Message) error
	Delete(ctx context.Context, chatID int64, messageID string) error
}

type clientImpl struct {
	baseURL    string
	token      string
	httpClient *http.Client
	otel       otel.Otel
}

// New returns a client for cfg.Gateway. Without a base URL messages are only
// logged, which is enough to drive the bot from the webhook during development.
func New(cfg *config.Config, otel otel.Otel) Client {
	if cfg.Gateway.BaseURL == "" {
		log.Warn().Msg("No chat gateway configured, outgoing messages will only be logged")

		return &logClient{}
	}

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Gateway.BaseURL, "/"),
		token:   cfg.Gateway.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

func (c *clientImpl) Send(ctx context.Context, chatID int64, message Message) (messageID string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gateway.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := c.do(ctx, http.MethodPost, messagesPath(chatID), message)
	if err != nil {
		return constant.Empty, err
	}

	var res sendResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if res.MessageID == constant.Empty {
		return constant.Empty, fmt.Errorf("gateway response has no message id")
	}

	return res.MessageID, nil
}

func (c *clientImpl) Edit(ctx context.Context, chatID int64, messageID string, message Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gateway.Edit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = c.do(ctx, http.MethodPut, messagesPath(chatID)+"/"+url.PathEscape(messageID), message)

	return err
}

func (c *clientImpl) Delete(ctx context.Context, chatID int64, messageID string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".gateway.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = c.do(ctx, http.MethodDelete, messagesPath(chatID)+"/"+url.PathEscape(messageID), nil)

	return err
}

func messagesPath(chatID int64) string {
	return "/chats/" + strconv.FormatInt(chatID, 10) + "/messages"
}

func (c *clientImpl) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode gateway request: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway request: %w", err)
	}

	if payload != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if c.token != constant.Empty {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("gateway request failed")

		return nil, fmt.Errorf("failed to call gateway %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	log.Error().Int("status", response.StatusCode).Str("method", method).Str("path", path).Bytes("body", body).Msg("gateway rejected request")

	if response.StatusCode == http.StatusNotFound {
		return nil, failure.NotFound(fmt.Sprintf("message not found: %s %s", method, path))
	}

	return nil, fmt.Errorf("gateway %s %s returned %d: %s", method, path, response.StatusCode, strings.TrimSpace(string(body)))
}

// logClient writes messages to the log and hands out sequential ids.
type logClient struct {
	next atomic.Int64
}

func (c *logClient) Send(_ context.Context, chatID int64, message Message) (string, error) {
	id := strconv.FormatInt(c.next.Add(1), 10)

	log.Info().Int64("chat_id", chatID).Str("message_id", id).Str("text", message.Text).Int("buttons", len(message.Buttons)).Msg("chat message")

	return id, nil
}

func (c *logClient) Edit(_ context.Context, chatID int64, messageID string, message Message) error {
	log.Info().Int64("chat_id", chatID).Str("message_id", messageID).Str("text", message.Text).Int("buttons", len(message.Buttons)).Msg("chat message edited")

	return nil
}

func (c *logClient) Delete(_ context.Context, chatID int64, messageID string) error {
	log.Info().Int64("chat_id", chatID).Str("message_id", messageID).Msg("chat message deleted")

	return nil
}
