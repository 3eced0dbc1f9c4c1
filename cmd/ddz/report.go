package main

import "github.com/lox/ddz/ddz"

type handReport struct {
	Cards  []string `json:"cards"`
	IDs    []int    `json:"ids"`
	Shape  string   `json:"shape"`
	Tier   string   `json:"tier"`
	Length int      `json:"length"`
	Rank   string   `json:"rank,omitempty"`
}

func newHandReport(h ddz.Hand) handReport {
	cards := h.Cards()
	r := handReport{
		Cards:  make([]string, len(cards)),
		IDs:    h.IDs(),
		Shape:  h.Shape().String(),
		Tier:   h.Value().Tier.String(),
		Length: h.Len(),
	}
	for i, c := range cards {
		r.Cards[i] = c.String()
	}
	if h.Value().Tier != ddz.TierIncomparable {
		r.Rank = h.Value().Rank.String()
	}
	return r
}

type beatReport struct {
	Pool       handReport   `json:"pool"`
	Target     handReport   `json:"target"`
	Candidates []handReport `json:"candidates"`
}

func newBeatReport(pool, target ddz.Hand, found [][]ddz.Card) beatReport {
	r := beatReport{
		Pool:       newHandReport(pool),
		Target:     newHandReport(target),
		Candidates: make([]handReport, 0, len(found)),
	}
	for _, cand := range found {
		// Candidates are drawn from a valid pool, so HandOf cannot fail.
		h, _ := ddz.HandOf(cand...)
		r.Candidates = append(r.Candidates, newHandReport(h))
	}
	return r
}

type dealReport struct {
	Seed  int64        `json:"seed"`
	Hands []handReport `json:"hands"`
}
