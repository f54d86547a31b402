// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"sort"

	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
)

// RFQ statuses.
const (
	RFQOpen     = "open"
	RFQAwarded  = "awarded"
	RFQRejected = "rejected"
)

// quoteTerms is the part of a quote that ranking looks at.
type quoteTerms struct {
	Price   *float64 `mapstructure:"price"`
	TradeID string   `mapstructure:"trade_id"`
}

// rfqAction is the part of an action request body the stub reads.
type rfqAction struct {
	QuoteID string `mapstructure:"quote_id"`
	Reason  string `mapstructure:"reason"`
}

// PopulateRFQs adds the RFQ lifecycle routes.
func (api *restAPI) PopulateRFQs(r *mux.Router) {
	api.handle(r, "/rfqs", "rfqs", &resourceHandler{Post: api.RFQPost})
	api.handle(r, "/rfqs/{rfq_id}", "rfq", &resourceHandler{Get: api.RFQGet})
	api.handle(r, "/rfqs/{rfq_id}/quotes", "rfqQuotes", &resourceHandler{
		Get:  api.QuotesGet,
		Post: api.QuotePost,
	})
	api.handle(r, "/rfqs/{rfq_id}/ranking", "rfqRanking", &resourceHandler{Get: api.RankingGet})
	api.handle(r, "/rfqs/{rfq_id}/trade-ranking", "rfqTradeRanking", &resourceHandler{Get: api.TradeRankingGet})
	api.handle(r, "/rfqs/{rfq_id}/actions/{action:award|refresh|reject}", "rfqAction", &resourceHandler{
		Post: api.RFQActionPost,
	})
}

func (api *restAPI) RFQPost(ctx *context, in Document) (interface{}, error) {
	in["status"] = RFQOpen
	doc := api.State.Create(KindRFQ, in)
	return api.created(doc, "rfq", "rfq_id")
}

func (api *restAPI) RFQGet(ctx *context) (interface{}, error) {
	return api.State.Get(KindRFQ, ctx.Vars["rfq_id"])
}

// quotes returns the quotes of the RFQ named in the URL.
func (api *restAPI) quotes(ctx *context) (string, []Document, error) {
	rfqID := ctx.Vars["rfq_id"]
	if _, err := api.State.Get(KindRFQ, rfqID); err != nil {
		return rfqID, nil, err
	}
	quotes := api.State.List(KindQuote, func(doc Document) bool {
		return doc.String("rfq_id") == rfqID
	})
	return rfqID, quotes, nil
}

func (api *restAPI) QuotesGet(ctx *context) (interface{}, error) {
	rfqID, quotes, err := api.quotes(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"rfq_id": rfqID, "quotes": quotes}, nil
}

func (api *restAPI) QuotePost(ctx *context, in Document) (interface{}, error) {
	rfqID := ctx.Vars["rfq_id"]
	rfq, err := api.State.Get(KindRFQ, rfqID)
	if err != nil {
		return nil, err
	}
	if status := rfq.String("status"); status != RFQOpen {
		return nil, errConflict{Kind: KindRFQ, ID: rfqID, Status: status, Action: "quote"}
	}
	var terms quoteTerms
	if err = mapstructure.WeakDecode(map[string]interface{}(in), &terms); err != nil {
		return nil, errUnprocessable{Err: err}
	}
	in["rfq_id"] = rfqID
	return responseCreated{Body: api.State.Create(KindQuote, in)}, nil
}

// rankQuotes orders quotes by ascending price.  Quotes without a
// usable price come last, in submission order.
func rankQuotes(quotes []Document) []map[string]interface{} {
	type ranked struct {
		doc   Document
		terms quoteTerms
	}
	items := make([]ranked, len(quotes))
	for i, doc := range quotes {
		items[i].doc = doc
		_ = mapstructure.WeakDecode(map[string]interface{}(doc), &items[i].terms)
	}
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].terms.Price, items[j].terms.Price
		if pi == nil || pj == nil {
			return pi != nil && pj == nil
		}
		return *pi < *pj
	})
	result := make([]map[string]interface{}, len(items))
	for i, item := range items {
		result[i] = map[string]interface{}{
			"rank":  i + 1,
			"quote": item.doc,
		}
	}
	return result
}

func (api *restAPI) RankingGet(ctx *context) (interface{}, error) {
	rfqID, quotes, err := api.quotes(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"rfq_id":  rfqID,
		"ranking": rankQuotes(quotes),
	}, nil
}

// TradeRankingGet ranks quotes separately within each trade_id.
func (api *restAPI) TradeRankingGet(ctx *context) (interface{}, error) {
	rfqID, quotes, err := api.quotes(ctx)
	if err != nil {
		return nil, err
	}
	byTrade := make(map[string][]Document)
	for _, doc := range quotes {
		var terms quoteTerms
		_ = mapstructure.WeakDecode(map[string]interface{}(doc), &terms)
		byTrade[terms.TradeID] = append(byTrade[terms.TradeID], doc)
	}
	trades := []map[string]interface{}{}
	for _, tradeID := range sortedKeys(byTrade) {
		trades = append(trades, map[string]interface{}{
			"trade_id": tradeID,
			"ranking":  rankQuotes(byTrade[tradeID]),
		})
	}
	return map[string]interface{}{"rfq_id": rfqID, "trades": trades}, nil
}

func (api *restAPI) RFQActionPost(ctx *context, in Document) (interface{}, error) {
	rfqID := ctx.Vars["rfq_id"]
	action := ctx.Vars["action"]
	var req rfqAction
	if err := mapstructure.WeakDecode(map[string]interface{}(in), &req); err != nil {
		return nil, errUnprocessable{Err: err}
	}
	if action == "award" && req.QuoteID != "" {
		quote, err := api.State.Get(KindQuote, req.QuoteID)
		if err != nil {
			return nil, errUnprocessable{Err: err}
		}
		if quote.String("rfq_id") != rfqID {
			return nil, errUnprocessable{Err: errors.New("Quote does not belong to this RFQ")}
		}
	}
	return api.State.Update(KindRFQ, rfqID, action, in, func(rfq Document) error {
		status := rfq.String("status")
		conflict := errConflict{Kind: KindRFQ, ID: rfqID, Status: status, Action: action}
		switch action {
		case "award":
			if status != RFQOpen {
				return conflict
			}
			rfq["status"] = RFQAwarded
			if req.QuoteID != "" {
				rfq["awarded_quote_id"] = req.QuoteID
			}
		case "refresh":
			if status != RFQOpen {
				return conflict
			}
			rfq["status"] = RFQOpen
			rfq["refreshed_at"] = api.State.now()
		case "reject":
			if status == RFQAwarded || status == RFQRejected {
				return conflict
			}
			rfq["status"] = RFQRejected
			if req.Reason != "" {
				rfq["rejection_reason"] = req.Reason
			}
		}
		return nil
	})
}
