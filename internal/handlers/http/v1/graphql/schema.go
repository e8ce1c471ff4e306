package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
)

var DateTime = graphql.NewScalar(
	graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "DateTime scalar type",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.Format(time.RFC3339)
			case *time.Time:
				return v.Format(time.RFC3339)
			default:
				return nil
			}
		},
	},
)

func (gh *gqlHandler) initSchema() error {
	commentType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Comment",
			Fields: graphql.Fields{
				"id":        &graphql.Field{Type: graphql.ID},
				"postId":    &graphql.Field{Type: graphql.ID},
				"userId":    &graphql.Field{Type: graphql.ID},
				"author":    &graphql.Field{Type: graphql.String},
				"content":   &graphql.Field{Type: graphql.String},
				"createdAt": &graphql.Field{Type: DateTime},
				"updatedAt": &graphql.Field{Type: DateTime},
			},
		},
	)

	postType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Post",
			Fields: graphql.Fields{
				"id":        &graphql.Field{Type: graphql.ID},
				"userId":    &graphql.Field{Type: graphql.ID},
				"author":    &graphql.Field{Type: graphql.String},
				"title":     &graphql.Field{Type: graphql.String},
				"content":   &graphql.Field{Type: graphql.String},
				"createdAt": &graphql.Field{Type: DateTime},
				"updatedAt": &graphql.Field{Type: DateTime},
				"comments":  &graphql.Field{Type: graphql.NewList(commentType)},
			},
		},
	)

	queryType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"post":     getPostQuery(gh, postType),
				"posts":    getPostsQuery(gh, postType),
				"comment":  getCommentQuery(gh, commentType),
				"comments": getCommentsQuery(gh, commentType),
			},
		},
	)

	schemaConfig := graphql.SchemaConfig{
		Query: queryType,
	}

	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return err
	}
	gh.schema = schema

	return nil
}
