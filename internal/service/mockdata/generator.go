// Package mockdata fabricates synthetic record collections for generated
// resources. The record shape is chosen by matching the resource name
// against a fixed set of domain archetypes.
package mockdata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mockforge/mockforge/internal/model/mockapi"
)

// DefaultRecordCount is the collection size used when no override is
// configured.
const DefaultRecordCount = 15

// archetype pairs a resource-name keyword with a record builder. The table
// is checked in declaration order, first match wins; the trailing entry has
// no keyword and always matches.
type archetype struct {
	keyword string
	build   func() mockapi.Record
}

var archetypes = []archetype{
	{keyword: "product", build: productRecord},
	{keyword: "user", build: userRecord},
	{keyword: "restaurant", build: restaurantRecord},
	{keyword: "menu", build: menuRecord},
	{keyword: "order", build: orderRecord},
	{keyword: "post", build: postRecord},
	{keyword: "comment", build: commentRecord},
	{build: genericRecord},
}

// Generator produces record collections of a configured default size.
type Generator struct {
	count int
}

// NewGenerator returns a generator producing count records per resource;
// non-positive counts fall back to DefaultRecordCount.
func NewGenerator(count int) *Generator {
	if count <= 0 {
		count = DefaultRecordCount
	}
	return &Generator{count: count}
}

// Generate fabricates count records shaped by the resource name. A
// non-positive count uses the generator's default.
func (g *Generator) Generate(resourceName string, count int) []mockapi.Record {
	if count <= 0 {
		count = g.count
	}

	build := builderFor(resourceName)
	records := make([]mockapi.Record, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, build())
	}
	return records
}

// GenerateAll fabricates the default-size collection for every resource in
// the schema, keyed by resource name.
func (g *Generator) GenerateAll(resources []mockapi.Resource) map[string][]mockapi.Record {
	data := make(map[string][]mockapi.Record, len(resources))
	for _, resource := range resources {
		data[resource.Name] = g.Generate(resource.Name, g.count)
	}
	return data
}

func builderFor(resourceName string) func() mockapi.Record {
	lower := strings.ToLower(resourceName)
	for _, a := range archetypes {
		if a.keyword == "" || strings.Contains(lower, a.keyword) {
			return a.build
		}
	}
	return genericRecord
}

func productRecord() mockapi.Record {
	return mockapi.Record{
		"id":          uuid.NewString(),
		"name":        fmt.Sprintf("%s %s %s", pick(productAdjectives), pick(productMaterials), pick(productNouns)),
		"description": sentence(8, 14),
		"price":       priceBetween(10, 500),
		"category":    pick(departments),
		"inStock":     intBetween(0, 1) == 1,
		"rating":      ratingBetween(3.0, 5.0),
		"imageUrl":    imageURL(),
		"createdAt":   recentDate(30),
	}
}

func userRecord() mockapi.Record {
	first, last := fullName()
	return mockapi.Record{
		"id":       uuid.NewString(),
		"username": username(first, last),
		"email":    email(first, last),
		"name":     first + " " + last,
		"avatar":   avatarURL(),
		"bio":      sentence(6, 12),
		"location": pick(cities),
		"joinedAt": pastDate(2),
	}
}

func restaurantRecord() mockapi.Record {
	return mockapi.Record{
		"id":           uuid.NewString(),
		"name":         pick(companyWords) + " " + pick(restaurantSuffixes),
		"cuisine":      pick(cuisines),
		"rating":       ratingBetween(3.5, 5.0),
		"deliveryTime": fmt.Sprintf("%d-%d min", intBetween(20, 50), intBetween(30, 60)),
		"minimumOrder": intBetween(10, 30),
		"address":      streetAddress(),
		"phone":        phoneNumber(),
		"imageUrl":     imageURL(),
		"isOpen":       intBetween(0, 1) == 1,
	}
}

func menuRecord() mockapi.Record {
	return mockapi.Record{
		"id":           uuid.NewString(),
		"name":         fmt.Sprintf("%s %s %s", pick(productAdjectives), pick(productMaterials), pick(productNouns)),
		"description":  sentence(6, 10),
		"price":        priceBetween(5, 30),
		"category":     pick(menuCategories),
		"isVegetarian": intBetween(0, 1) == 1,
		"isSpicy":      intBetween(0, 1) == 1,
		"imageUrl":     imageURL(),
		"calories":     intBetween(200, 1200),
	}
}

func orderRecord() mockapi.Record {
	return mockapi.Record{
		"id":                uuid.NewString(),
		"orderNumber":       fmt.Sprintf("ORD-%d", intBetween(10000, 99999)),
		"userId":            uuid.NewString(),
		"total":             priceBetween(20, 150),
		"status":            pick(orderStatuses),
		"items":             intBetween(1, 5),
		"deliveryAddress":   streetAddress(),
		"createdAt":         recentDate(7),
		"estimatedDelivery": soonDate(1),
	}
}

func postRecord() mockapi.Record {
	first, last := fullName()
	return mockapi.Record{
		"id":         uuid.NewString(),
		"title":      sentence(5, 10),
		"content":    paragraphs(2),
		"authorId":   uuid.NewString(),
		"authorName": first + " " + last,
		"likes":      intBetween(0, 1000),
		"comments":   intBetween(0, 100),
		"imageUrl":   imageURL(),
		"createdAt":  recentDate(30),
	}
}

func commentRecord() mockapi.Record {
	first, last := fullName()
	return mockapi.Record{
		"id":        uuid.NewString(),
		"postId":    uuid.NewString(),
		"userId":    uuid.NewString(),
		"userName":  first + " " + last,
		"content":   paragraph(),
		"likes":     intBetween(0, 50),
		"createdAt": recentDate(7),
	}
}

func genericRecord() mockapi.Record {
	return mockapi.Record{
		"id":          uuid.NewString(),
		"name":        fmt.Sprintf("%s %s %s", pick(productAdjectives), pick(productMaterials), pick(productNouns)),
		"description": sentence(6, 12),
		"value":       intBetween(1, 100),
		"status":      pick(genericStatuses),
		"createdAt":   recentDate(30),
	}
}
