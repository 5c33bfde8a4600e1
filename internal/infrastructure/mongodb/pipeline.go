package mongodb

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/mediahub/internal/domain/query"
)

// toPipeline translates a plan into an aggregation pipeline, one pipeline
// stage per plan stage, in the same order.
func toPipeline(plan query.Plan) (mongo.Pipeline, error) {
	pipeline := make(mongo.Pipeline, 0, len(plan.Stages))
	for _, stage := range plan.Stages {
		switch s := stage.(type) {
		case query.FilterStage:
			match, err := toFilter(s.Predicate)
			if err != nil {
				return nil, err
			}
			pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
		case query.SortStage:
			dir := 1
			if s.Desc {
				dir = -1
			}
			pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
				{Key: docField(s.Field), Value: dir},
				{Key: "_id", Value: 1},
			}}})
		case query.SkipStage:
			if s.N > 0 {
				pipeline = append(pipeline, bson.D{{Key: "$skip", Value: int64(s.N)}})
			}
		case query.TakeStage:
			if s.N > 0 {
				pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(s.N)}})
			}
		default:
			return nil, fmt.Errorf("unsupported plan stage %T", stage)
		}
	}
	return pipeline, nil
}

func toFilter(pred query.Predicate) (bson.D, error) {
	switch p := pred.(type) {
	case query.Eq:
		return bson.D{{Key: docField(p.Field), Value: docValue(p.Value)}}, nil
	case query.ContainsFold:
		return bson.D{{Key: docField(p.Field), Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(p.Text),
			Options: "i",
		}}}, nil
	case query.And:
		return combine("$and", p)
	case query.Or:
		return combine("$or", p)
	}
	return nil, fmt.Errorf("unsupported predicate %T", pred)
}

func combine(op string, preds []query.Predicate) (bson.D, error) {
	terms := make(bson.A, 0, len(preds))
	for _, sub := range preds {
		f, err := toFilter(sub)
		if err != nil {
			return nil, err
		}
		terms = append(terms, f)
	}
	return bson.D{{Key: op, Value: terms}}, nil
}

func docField(field string) string {
	if field == query.FieldID {
		return "_id"
	}
	return field
}

func docValue(v any) any {
	if id, ok := v.(uuid.UUID); ok {
		return id.String()
	}
	return v
}
