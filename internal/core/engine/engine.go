package engine

import (
	"math/rand"
	"time"
)

// Engine 規則式食譜產生器
// 所有隨機行為都經由內部的 rng，測試時可注入固定種子
type Engine struct {
	rng *rand.Rand
}

// New 建立以目前時間為種子的引擎
func New() *Engine {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand 建立使用指定亂數來源的引擎
func NewWithRand(r *rand.Rand) *Engine {
	return &Engine{rng: r}
}
