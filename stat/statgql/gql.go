// Package statgql exposes GraphQL types for stat readings, for embedding in a
// service schema.
package statgql

import (
	"github.com/graphql-go/graphql"
)

// SnapshotType is the GraphQL type for stat.Snapshot. Fields resolve through the
// struct's JSON tags; NaN readings surface as null.
var SnapshotType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StatSnapshot",
	Fields: graphql.Fields{
		"count": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Float),
			Description: "Number of observations.",
		},
		"mean": &graphql.Field{
			Type:        graphql.Float,
			Description: "Mean value. Valid if count>0.",
		},
		"variance": &graphql.Field{
			Type:        graphql.Float,
			Description: "Unbiased variance. Valid if count>1.",
		},
		"stdev": &graphql.Field{
			Type:        graphql.Float,
			Description: "Standard deviation. Valid if count>1.",
		},
		"min": &graphql.Field{
			Type:        graphql.Float,
			Description: "Minimum value. Valid if count>0.",
		},
		"max": &graphql.Field{
			Type:        graphql.Float,
			Description: "Maximum value. Valid if count>0.",
		},
	},
})
