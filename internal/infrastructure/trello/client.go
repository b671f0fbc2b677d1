package trello

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/adlio/trello"

	"pr_report/internal/config"
	"pr_report/internal/domain"
	"pr_report/internal/domain/entity"
	"pr_report/pkg/errcodes"
)

type Client struct {
	api *trello.Client
}

func NewClient(httpClient *http.Client, cfg config.Trello) *Client {
	api := trello.NewClient(cfg.APIKey, cfg.Token)
	api.Client = httpClient
	api.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{api: api}
}

// ResolveCard fetches the card and then the list holding it; the list name is
// the card's status.
func (c *Client) ResolveCard(ctx context.Context, cardID string) (entity.Card, error) {
	api := c.api.WithContext(ctx)

	card, err := api.GetCard(url.PathEscape(cardID), trello.Arguments{"fields": "name,idList,url,shortUrl"})
	if err != nil {
		return entity.Card{}, domain.WrapError(stripCredentials(err), errcodes.CardLookupFailed, fmt.Sprintf("failed to fetch card %s", cardID))
	}
	if card == nil || card.IDList == "" {
		return entity.Card{}, domain.NewError(errcodes.CardLookupFailed, fmt.Sprintf("card %s has no list", cardID))
	}

	list, err := api.GetList(url.PathEscape(card.IDList), trello.Arguments{"fields": "name"})
	if err != nil {
		return entity.Card{}, domain.WrapError(stripCredentials(err), errcodes.CardLookupFailed, fmt.Sprintf("failed to fetch list %s of card %s", card.IDList, cardID))
	}
	if list == nil {
		return entity.Card{}, domain.NewError(errcodes.CardLookupFailed, fmt.Sprintf("list %s of card %s is empty", card.IDList, cardID))
	}

	cardURL := card.URL
	if cardURL == "" {
		cardURL = card.ShortURL
	}

	return entity.Card{
		ID:         cardID,
		Title:      card.Name,
		StatusName: list.Name,
		URL:        cardURL,
	}, nil
}

// stripCredentials drops the url.Error a transport failure carries, since its
// URL holds the key and token query parameters.
func stripCredentials(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
