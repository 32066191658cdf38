// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ List, ByID, Create, Update, Delete, Categories string }
}{
	BlogService: struct{ List, ByID, Create, Update, Delete, Categories string }{
		List:       "list",
		ByID:       "byid",
		Create:     "create",
		Update:     "update",
		Delete:     "delete",
		Categories: "categories",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves all posts sorted by date DESC.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of posts`,
					Type:        smd.Array,
					TypeName:    "[]Post",
					Items: map[string]string{
						"$ref": "#/definitions/Post",
					},
					Definitions: map[string]smd.Definition{
						"Post": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Type: smd.String,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name: "excerpt",
									Type: smd.String,
								},
								{
									Name: "content",
									Type: smd.String,
								},
								{
									Name: "category",
									Type: smd.String,
								},
								{
									Name: "author",
									Type: smd.String,
								},
								{
									Name: "date",
									Type: smd.String,
								},
								{
									Name: "readTime",
									Type: smd.String,
								},
								{
									Name: "createdAt",
									Type: smd.String,
								},
								{
									Name:     "updatedAt",
									Optional: true,
									Type:     smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single post by its slug id.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostByIDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id post slug`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.String,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "category",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "date",
							Type: smd.String,
						},
						{
							Name: "readTime",
							Type: smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name:     "updatedAt",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "id must not be empty",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Create": {
				Description: `Create persists a new post with a unique slug id derived from the title.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "CreatePostRequest",
						Properties: smd.PropertyList{
							{
								Name: "title",
								Type: smd.String,
							},
							{
								Name: "excerpt",
								Type: smd.String,
							},
							{
								Name: "content",
								Type: smd.String,
							},
							{
								Name: "category",
								Type: smd.String,
							},
							{
								Name: "author",
								Type: smd.String,
							},
							{
								Name:        "readTime",
								Description: `readTime optional, estimated from content when empty`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `created post`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.String,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "category",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "date",
							Type: smd.String,
						},
						{
							Name: "readTime",
							Type: smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name:     "updatedAt",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					400: "title produces an empty slug",
					409: "slug conflict",
					500: "internal server error",
				},
			},
			"Update": {
				Description: `Update applies the supplied fields to an existing post.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "UpdatePostRequest",
						Properties: smd.PropertyList{
							{
								Name: "id",
								Type: smd.String,
							},
							{
								Name:     "title",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "excerpt",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "content",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "category",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "author",
								Optional: true,
								Type:     smd.String,
							},
							{
								Name:     "readTime",
								Optional: true,
								Type:     smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `updated post`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Type: smd.String,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "excerpt",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "category",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "date",
							Type: smd.String,
						},
						{
							Name: "readTime",
							Type: smd.String,
						},
						{
							Name: "createdAt",
							Type: smd.String,
						},
						{
							Name:     "updatedAt",
							Optional: true,
							Type:     smd.String,
						},
					},
				},
				Errors: map[int]string{
					404: "post not found",
					500: "internal server error",
				},
			},
			"Delete": {
				Description: `Delete removes a post by its slug id.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostByIDRequest",
						Properties: smd.PropertyList{
							{
								Name:        "id",
								Description: `id post slug`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `true when the post existed`,
					Type:        smd.Boolean,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories returns the suggested category list.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Array,
					TypeName:    "[]",
					Items: map[string]string{
						"type": smd.String,
					},
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.List:
		resp.Set(s.List(ctx))

	case RPC.BlogService.ByID:
		var args = struct {
			Req PostByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.BlogService.Create:
		var args = struct {
			Req CreatePostRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Create(ctx, args.Req))

	case RPC.BlogService.Update:
		var args = struct {
			Req UpdatePostRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Update(ctx, args.Req))

	case RPC.BlogService.Delete:
		var args = struct {
			Req PostByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Delete(ctx, args.Req))

	case RPC.BlogService.Categories:
		resp.Set(s.Categories(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
