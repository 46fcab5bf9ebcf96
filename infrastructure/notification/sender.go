package notification

//go:generate mockgen -source=sender.go -destination=mocks/sender.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Sender entrega uma mensagem de texto ao canal de notificação
type Sender interface {
	Send(ctx context.Context, text string) error
}

// NewSender escolhe o Telegram quando configurado; caso contrário os alertas vão só para o log
func NewSender(cfg *config.Config) Sender {
	if !cfg.Notification.Enabled() {
		logrus.Warn("Notificação: Telegram não configurado, alertas serão apenas registrados em log")
		return &LogSender{}
	}

	return NewTelegramSender(cfg.Notification, cfg.Meta.RequestTimeout())
}

type TelegramSender struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
}

func NewTelegramSender(cfg config.Notification, timeout time.Duration) *TelegramSender {
	return &TelegramSender{
		baseURL:    cfg.TelegramBaseURL,
		botToken:   cfg.TelegramBotToken,
		chatID:     cfg.TelegramChatID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *TelegramSender) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var result telegramResponse
	if err := json.Unmarshal(body, &result); err != nil || !result.OK {
		return fmt.Errorf("telegram recusou a mensagem. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	return nil
}

// LogSender registra a mensagem em log no lugar de enviá-la
type LogSender struct{}

func (s *LogSender) Send(_ context.Context, text string) error {
	logrus.WithField("channel", "log").Info(text)
	return nil
}
