package questions

import (
	"context"
	"errors"
	"math/rand"

	"github.com/gibberish-game/core/internal/model"
)

var ErrBankTooSmall = errors.New("not enough questions in bank")

// defaultPairs are "say it out loud" puzzles: the question is gibberish
// that sounds like the answer phrase when spoken.
var defaultPairs = []model.QnA{
	{Question: "ice mall tock", Answer: "small talk"},
	{Question: "eye sand wedge", Answer: "ice sandwich"},
	{Question: "ache and sea", Answer: "agency"},
	{Question: "sand tack laws", Answer: "santa claus"},
	{Question: "mow bile fone", Answer: "mobile phone"},
	{Question: "pop ping corm", Answer: "popping corn"},
	{Question: "ban an a split", Answer: "banana split"},
	{Question: "shock lit chips", Answer: "chocolate chips"},
	{Question: "thigh pin err or", Answer: "typing error"},
	{Question: "dish soap ware", Answer: "dishware soap"},
	{Question: "can dull light", Answer: "candle light"},
	{Question: "sigh lent tree mint", Answer: "silent treatment"},
	{Question: "buy sick cull", Answer: "bicycle"},
	{Question: "her am bag", Answer: "hair and bag"},
	{Question: "tell her vision", Answer: "television"},
	{Question: "hole and hearted", Answer: "wholehearted"},
	{Question: "mid knight snack", Answer: "midnight snack"},
	{Question: "rain in cats and dugs", Answer: "raining cats and dogs"},
	{Question: "pea nut but her", Answer: "peanut butter"},
	{Question: "roll her coast her", Answer: "roller coaster"},
	{Question: "wreck a nice", Answer: "recognise"},
	{Question: "sea crest oar e", Answer: "secret story"},
	{Question: "news pay per", Answer: "newspaper"},
	{Question: "thumb thing good", Answer: "something good"},
}

// Bank serves question sets from an in-process pool. It is the default
// QnA source when no database is configured.
type Bank struct {
	pairs []model.QnA
}

func NewBank() *Bank {
	return &Bank{pairs: defaultPairs}
}

// Draw picks n distinct pairs in random order. Each call yields an
// independent set, so every room gets its own shuffle.
func (b *Bank) Draw(_ context.Context, n int) ([]model.QnA, error) {
	if n > len(b.pairs) {
		return nil, ErrBankTooSmall
	}

	qna := make([]model.QnA, 0, n)
	for _, i := range rand.Perm(len(b.pairs))[:n] {
		qna = append(qna, b.pairs[i])
	}
	return qna, nil
}
