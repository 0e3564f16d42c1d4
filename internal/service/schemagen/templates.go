package schemagen

import (
	"strings"

	"github.com/mockforge/mockforge/internal/model/mockapi"
)

// template pairs domain keywords with a hand-authored schema builder.
// Matchers run in declaration order, first match wins; the trailing entry has
// no keywords and always matches.
type template struct {
	keywords []string
	build    func(description string) mockapi.Schema
}

var templates = []template{
	{keywords: []string{"ecommerce", "e-commerce", "shop"}, build: ecommerceTemplate},
	{keywords: []string{"social", "media"}, build: socialMediaTemplate},
	{keywords: []string{"food", "restaurant", "delivery"}, build: foodDeliveryTemplate},
	{build: genericTemplate},
}

// FallbackSchema picks the deterministic template for a description. Used
// whenever the model path is unavailable or produces unusable output.
func FallbackSchema(description string) mockapi.Schema {
	lower := strings.ToLower(description)
	for _, t := range templates {
		if len(t.keywords) == 0 || containsAny(lower, t.keywords) {
			return t.build(description)
		}
	}
	return genericTemplate(description)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func endpoint(method, path, description, schemaType string) mockapi.Endpoint {
	return mockapi.Endpoint{
		Method:         method,
		Path:           path,
		Description:    description,
		ResponseSchema: map[string]any{"type": schemaType},
	}
}

func ecommerceTemplate(string) mockapi.Schema {
	return mockapi.Schema{
		Name:        "E-Commerce API",
		Description: "Complete e-commerce platform API",
		Resources: []mockapi.Resource{
			{
				Name: "products",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/products", "Get all products", "array"),
					endpoint("GET", "/products/:id", "Get product by ID", "object"),
					endpoint("POST", "/products", "Create product", "object"),
					endpoint("PUT", "/products/:id", "Update product", "object"),
					endpoint("DELETE", "/products/:id", "Delete product", "object"),
				},
			},
			{
				Name: "users",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/users", "Get all users", "array"),
					endpoint("GET", "/users/:id", "Get user by ID", "object"),
					endpoint("POST", "/users", "Create user", "object"),
					endpoint("PUT", "/users/:id", "Update user", "object"),
				},
			},
			{
				Name: "orders",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/orders", "Get all orders", "array"),
					endpoint("GET", "/orders/:id", "Get order by ID", "object"),
					endpoint("POST", "/orders", "Create order", "object"),
					endpoint("PUT", "/orders/:id", "Update order status", "object"),
				},
			},
		},
	}
}

func socialMediaTemplate(string) mockapi.Schema {
	return mockapi.Schema{
		Name:        "Social Media API",
		Description: "Social networking platform API",
		Resources: []mockapi.Resource{
			{
				Name: "users",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/users", "Get all users", "array"),
					endpoint("GET", "/users/:id", "Get user profile", "object"),
					endpoint("POST", "/users", "Create user", "object"),
					endpoint("PUT", "/users/:id", "Update profile", "object"),
				},
			},
			{
				Name: "posts",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/posts", "Get all posts", "array"),
					endpoint("GET", "/posts/:id", "Get post by ID", "object"),
					endpoint("POST", "/posts", "Create post", "object"),
					endpoint("DELETE", "/posts/:id", "Delete post", "object"),
				},
			},
			{
				Name: "comments",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/comments", "Get all comments", "array"),
					endpoint("POST", "/comments", "Create comment", "object"),
					endpoint("DELETE", "/comments/:id", "Delete comment", "object"),
				},
			},
		},
	}
}

func foodDeliveryTemplate(string) mockapi.Schema {
	return mockapi.Schema{
		Name:        "Food Delivery API",
		Description: "Food delivery platform API",
		Resources: []mockapi.Resource{
			{
				Name: "restaurants",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/restaurants", "Get all restaurants", "array"),
					endpoint("GET", "/restaurants/:id", "Get restaurant details", "object"),
					endpoint("POST", "/restaurants", "Add restaurant", "object"),
				},
			},
			{
				Name: "menus",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/menus", "Get all menu items", "array"),
					endpoint("GET", "/menus/:id", "Get menu item", "object"),
					endpoint("POST", "/menus", "Add menu item", "object"),
				},
			},
			{
				Name: "orders",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/orders", "Get all orders", "array"),
					endpoint("GET", "/orders/:id", "Get order details", "object"),
					endpoint("POST", "/orders", "Place order", "object"),
					endpoint("PUT", "/orders/:id", "Update order status", "object"),
				},
			},
		},
	}
}

// genericTemplate carries the user's description verbatim.
func genericTemplate(description string) mockapi.Schema {
	return mockapi.Schema{
		Name:        "Custom API",
		Description: description,
		Resources: []mockapi.Resource{
			{
				Name: "items",
				Endpoints: []mockapi.Endpoint{
					endpoint("GET", "/items", "Get all items", "array"),
					endpoint("GET", "/items/:id", "Get item by ID", "object"),
					endpoint("POST", "/items", "Create item", "object"),
					endpoint("PUT", "/items/:id", "Update item", "object"),
					endpoint("DELETE", "/items/:id", "Delete item", "object"),
				},
			},
		},
	}
}
