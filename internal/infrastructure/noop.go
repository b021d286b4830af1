package infrastructure

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/domain"
	"github.com/DRSN-tech/visual-search/internal/usecase"
)

// Заглушки для компонентов, выключенных конфигурацией. Позволяют
// не проверять nil-зависимости внутри бизнес-логики.

type NoopEvents struct{}

func NewNoopEvents() *NoopEvents { return &NoopEvents{} }

func (NoopEvents) SearchPerformed(context.Context, *usecase.SearchEventReq) error { return nil }
func (NoopEvents) IndexBuilt(context.Context, *usecase.BuildRes) error            { return nil }

type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetResponse(context.Context, string) (*usecase.MatchRes, error) { return nil, nil }
func (NoopCache) SetResponse(context.Context, string, *usecase.MatchRes) error   { return nil }

type NoopMirror struct{}

func NewNoopMirror() *NoopMirror { return &NoopMirror{} }

func (NoopMirror) Upsert(context.Context, []domain.Embedding) error { return nil }

type NoopArtifacts struct{}

func NewNoopArtifacts() *NoopArtifacts { return &NoopArtifacts{} }

func (NoopArtifacts) Publish(context.Context) error { return nil }
func (NoopArtifacts) Fetch(context.Context) error   { return nil }
