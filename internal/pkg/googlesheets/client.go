// Package googlesheets тонкая обертка над Google Sheets API v4.
package googlesheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"orderbot/internal/pkg/config"
	"orderbot/pkg/logger"
)

const (
	DimensionRows    = "ROWS"
	DimensionColumns = "COLUMNS"

	valueInputUserEntered = "USER_ENTERED"
)

var ErrEmptyCredentials = errors.New("empty service account credentials")

type Sheet struct {
	ID    int64
	Title string
}

type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, log logger.Logger, cfg *config.GoogleSheets) (*Client, error) {
	if cfg.ServiceAccountJSON == "" {
		return nil, ErrEmptyCredentials
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	log.With(logger.NewField("component", "google-sheets")).Info("google sheets client created")

	return &Client{service: service}, nil
}

func (c *Client) GetValues(ctx context.Context, spreadsheetID string, readRange string, majorDimension string) ([][]any, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		MajorDimension(majorDimension).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]Sheet, error) {
	resp, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties(sheetId,title)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	out := make([]Sheet, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties == nil {
			continue
		}
		out = append(out, Sheet{ID: s.Properties.SheetId, Title: s.Properties.Title})
	}
	return out, nil
}

// CopySheet копирует лист в ту же таблицу, возвращает id копии.
func (c *Client) CopySheet(ctx context.Context, spreadsheetID string, sheetID int64) (int64, error) {
	resp, err := c.service.Spreadsheets.Sheets.CopyTo(spreadsheetID, sheetID, &sheets.CopySheetToAnotherSpreadsheetRequest{
		DestinationSpreadsheetId: spreadsheetID,
	}).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	return resp.SheetId, nil
}

func (c *Client) RenameSheet(ctx context.Context, spreadsheetID string, sheetID int64, title string) error {
	return c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId:         sheetID,
				Title:           title,
				ForceSendFields: []string{"SheetId"},
			},
			Fields: "title",
		},
	})
}

func (c *Client) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	return c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{
			SheetId:         sheetID,
			ForceSendFields: []string{"SheetId"},
		},
	})
}

func (c *Client) UpdateValue(ctx context.Context, spreadsheetID string, cellRange string, value any) error {
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, cellRange, &sheets.ValueRange{
		Values: [][]any{{value}},
	}).ValueInputOption(valueInputUserEntered).Context(ctx).Do()
	return err
}

func (c *Client) batchUpdate(ctx context.Context, spreadsheetID string, requests ...*sheets.Request) error {
	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}
