package usecase

import "context"

type MatcherUC interface {
	MatchImage(ctx context.Context, req *MatchReq) (*MatchRes, error)
}

type BuilderUC interface {
	BuildIndex(ctx context.Context, req *BuildReq) (*BuildRes, error)
}
