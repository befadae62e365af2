package service

//go:generate go run go.uber.org/mock/mockgen -source=./presenter.go -destination=../mocks/presenter_mock.go -package=mocks

import (
	"cargobike/infras/gateway"
	"cargobike/internal/domains/form/model"
	"cargobike/shared/constant"
	"context"
	"fmt"
)

// Presenter renders effects in a chat and removes messages it rendered before.
type Presenter interface {
	Present(ctx context.Context, chatID int64, effect model.Effect) (model.MessageRef, error)
	Delete(ctx context.Context, chatID int64, ref model.MessageRef) error
}

type chatPresenter struct {
	client gateway.Client
}

// NewPresenter renders effects as gateway messages. An effect carrying Edit
// replaces that message in place.
func NewPresenter(client gateway.Client) Presenter {
	return &chatPresenter{client: client}
}

func (p *chatPresenter) Present(ctx context.Context, chatID int64, effect model.Effect) (model.MessageRef, error) {
	message := toMessage(effect)

	if effect.Edit != constant.Empty {
		if err := p.client.Edit(ctx, chatID, string(effect.Edit), message); err != nil {
			return constant.Empty, fmt.Errorf("failed to edit message %s: %w", effect.Edit, err)
		}

		return effect.Edit, nil
	}

	id, err := p.client.Send(ctx, chatID, message)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to send message: %w", err)
	}

	return model.MessageRef(id), nil
}

func (p *chatPresenter) Delete(ctx context.Context, chatID int64, ref model.MessageRef) error {
	if err := p.client.Delete(ctx, chatID, string(ref)); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", ref, err)
	}

	return nil
}

func toMessage(effect model.Effect) gateway.Message {
	message := gateway.Message{Text: effect.Text}

	if effect.HTML {
		message.ParseMode = gateway.ParseModeHTML
	}

	for _, button := range effect.Buttons {
		message.Buttons = append(message.Buttons, gateway.Button{Label: button.Label, Data: button.Data})
	}

	if effect.WebApp != nil {
		message.WebApp = &gateway.WebApp{Label: effect.WebApp.Label, URL: effect.WebApp.URL}
	}

	return message
}
