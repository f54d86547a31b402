// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// RFQ action names, as used in the /rfqs/{id}/actions/{action} path.
const (
	RFQAward   = "award"
	RFQRefresh = "refresh"
	RFQReject  = "reject"
)

func rfqVars(id string) map[string]interface{} {
	return map[string]interface{}{"rfq_id": id}
}

// CreateRFQ opens a new request for quotes.
func (c *Client) CreateRFQ(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/rfqs", payload)
}

// RFQ retrieves a request for quotes.
func (c *Client) RFQ(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/rfqs/{rfq_id}", rfqVars(id))
}

// CreateQuote records a counterparty quote against an RFQ.
func (c *Client) CreateQuote(ctx context.Context, id string, payload interface{}) (restdata.Value, error) {
	return c.postTo(ctx, "/rfqs/{rfq_id}/quotes", rfqVars(id), payload)
}

// RFQRanking retrieves the quotes of an RFQ in rank order.
func (c *Client) RFQRanking(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/rfqs/{rfq_id}/ranking", rfqVars(id))
}

// RFQTradeRanking retrieves the per-trade ranking of an RFQ's quotes.
func (c *Client) RFQTradeRanking(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/rfqs/{rfq_id}/trade-ranking", rfqVars(id))
}

// RFQAction performs one of the RFQ lifecycle actions RFQAward,
// RFQRefresh, or RFQReject.
func (c *Client) RFQAction(ctx context.Context, id, action string, payload interface{}) (restdata.Value, error) {
	return c.postTo(ctx, "/rfqs/{rfq_id}/actions/{action}", map[string]interface{}{
		"rfq_id": id,
		"action": action,
	}, payload)
}

// AwardRFQ awards an RFQ to a quote.
func (c *Client) AwardRFQ(ctx context.Context, id string, payload interface{}) (restdata.Value, error) {
	return c.RFQAction(ctx, id, RFQAward, payload)
}

// RefreshRFQ asks counterparties to requote.
func (c *Client) RefreshRFQ(ctx context.Context, id string, payload interface{}) (restdata.Value, error) {
	return c.RFQAction(ctx, id, RFQRefresh, payload)
}

// RejectRFQ closes an RFQ without awarding it.
func (c *Client) RejectRFQ(ctx context.Context, id string, payload interface{}) (restdata.Value, error) {
	return c.RFQAction(ctx, id, RFQReject, payload)
}
