package grpc

import (
	"context"

	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
)

type MatchService struct {
	proto.UnimplementedMatchServiceServer
	matchUC usecase.MatcherUC
	logger  logger.Logger
}

func NewMatchService(matchUC usecase.MatcherUC, logger logger.Logger) *MatchService {
	return &MatchService{matchUC: matchUC, logger: logger}
}

func (g *MatchService) MatchImage(ctx context.Context, req *proto.MatchRequest) (*proto.MatchResponse, error) {
	const op = "grpc.MatchImage"

	res, err := g.matchUC.MatchImage(ctx, usecase.NewMatchReq(req.ImageData, req.Filename))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.MatchResponse{
		Results: toArrGRPCRegionMatches(res.Results),
	}, nil
}

func toGRPCMatch(match *usecase.Match) *proto.Match {
	return &proto.Match{
		Score:        match.Score,
		Title:        match.Title,
		Image:        match.Image,
		Price:        match.Price,
		ExternalUrl:  match.ExternalURL,
		PinterestUrl: match.PinterestURL,
		ImagePath:    match.ImagePath,
	}
}

func toGRPCRegionMatches(region *usecase.RegionMatches) *proto.RegionMatches {
	matches := make([]*proto.Match, len(region.Matches))
	for i, match := range region.Matches {
		matches[i] = toGRPCMatch(&match)
	}

	return &proto.RegionMatches{
		Label:      region.Label,
		Confidence: region.Confidence,
		X1:         int32(region.X1),
		Y1:         int32(region.Y1),
		X2:         int32(region.X2),
		Y2:         int32(region.Y2),
		Matches:    matches,
	}
}

func toArrGRPCRegionMatches(regions []usecase.RegionMatches) []*proto.RegionMatches {
	res := make([]*proto.RegionMatches, len(regions))
	for i, region := range regions {
		res[i] = toGRPCRegionMatches(&region)
	}

	return res
}
