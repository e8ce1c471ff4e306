package graphql

import (
	"strconv"

	"github.com/graphql-go/graphql"
)

func parseID(arg interface{}) (int64, error) {
	s, _ := arg.(string)
	return strconv.ParseInt(s, 10, 64)
}

func getPostQuery(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: postType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			return gh.svc.GetPost(p.Context, id)
		},
	}
}

func getPostsQuery(gh *gqlHandler, postType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(postType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.ListPosts(p.Context)
		},
	}
}

func getCommentQuery(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: commentType,
		Args: graphql.FieldConfigArgument{
			"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			postID, err := parseID(p.Args["postId"])
			if err != nil {
				return nil, err
			}
			id, err := parseID(p.Args["id"])
			if err != nil {
				return nil, err
			}
			return gh.svc.GetComment(p.Context, postID, id)
		},
	}
}

func getCommentsQuery(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(commentType),
		Args: graphql.FieldConfigArgument{
			"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			postID, err := parseID(p.Args["postId"])
			if err != nil {
				return nil, err
			}
			return gh.svc.CommentsForPost(p.Context, postID)
		},
	}
}
