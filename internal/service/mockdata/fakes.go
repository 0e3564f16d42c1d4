package mockdata

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"
	"time"
)

// Hand-rolled sample data in lieu of a faker dependency. Lists only need to
// be large enough that 15-record collections look plausibly varied.

var firstNames = []string{
	"Ava", "Liam", "Mia", "Noah", "Emma", "Oliver", "Sofia", "Ethan",
	"Isla", "Lucas", "Chloe", "Mason", "Ruby", "Leo", "Grace", "Henry",
	"Nora", "Jack", "Elena", "Owen",
}

var lastNames = []string{
	"Smith", "Johnson", "Garcia", "Chen", "Patel", "Kim", "Martinez",
	"Brown", "Nguyen", "Wilson", "Anderson", "Silva", "Khan", "Moore",
	"Rossi", "Clark", "Sato", "Lewis",
}

var cities = []string{
	"Austin", "Portland", "Denver", "Seattle", "Chicago", "Boston",
	"Atlanta", "Nashville", "San Diego", "Minneapolis", "Phoenix",
	"Philadelphia",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Elm", "Pine", "Willow", "Birch", "Walnut",
	"Chestnut", "Spruce",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Ln", "Dr", "Way"}

var productAdjectives = []string{
	"Rustic", "Elegant", "Handcrafted", "Sleek", "Practical", "Modern",
	"Vintage", "Premium", "Compact", "Ergonomic", "Lightweight", "Durable",
}

var productMaterials = []string{
	"Steel", "Wooden", "Granite", "Rubber", "Cotton", "Leather", "Bamboo",
	"Ceramic", "Glass", "Linen",
}

var productNouns = []string{
	"Chair", "Lamp", "Table", "Keyboard", "Backpack", "Bottle", "Notebook",
	"Speaker", "Wallet", "Mug", "Blanket", "Clock",
}

var departments = []string{
	"Electronics", "Home", "Garden", "Toys", "Clothing", "Sports",
	"Books", "Kitchen", "Outdoors", "Beauty",
}

var companyWords = []string{
	"Golden", "Urban", "Blue Harbor", "Sunset", "Riverside", "Northern",
	"Old Town", "Silver Leaf", "Harvest", "Lakeside",
}

var restaurantSuffixes = []string{
	"Kitchen", "Bistro", "Grill", "Cafe", "House", "Palace", "Corner",
	"Express",
}

var cuisines = []string{
	"Italian", "Chinese", "Indian", "Mexican", "Japanese", "Thai",
	"American", "French", "Mediterranean",
}

var menuCategories = []string{
	"Appetizers", "Main Course", "Desserts", "Beverages", "Sides",
}

var orderStatuses = []string{
	"pending", "confirmed", "preparing", "out_for_delivery", "delivered",
	"cancelled",
}

var genericStatuses = []string{"active", "inactive", "pending"}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "tempor", "incididunt", "labore", "dolore", "magna",
	"aliqua", "enim", "minim", "veniam", "quis", "nostrud", "exercitation",
	"ullamco", "laboris", "nisi", "aliquip", "commodo", "consequat",
}

func pick[T any](items []T) T {
	return items[mathrand.IntN(len(items))]
}

func intBetween(min, max int) int {
	return min + mathrand.IntN(max-min+1)
}

// priceBetween returns a price with two decimals in [min, max).
func priceBetween(min, max float64) float64 {
	value := min + mathrand.Float64()*(max-min)
	return float64(int(value*100)) / 100
}

// ratingBetween returns a rating with one decimal in [min, max).
func ratingBetween(min, max float64) float64 {
	value := min + mathrand.Float64()*(max-min)
	return float64(int(value*10)) / 10
}

func fullName() (first, last string) {
	return pick(firstNames), pick(lastNames)
}

func username(first, last string) string {
	return strings.ToLower(first) + "_" + strings.ToLower(last) + fmt.Sprintf("%d", intBetween(1, 99))
}

func email(first, last string) string {
	domains := []string{"example.com", "mail.test", "inbox.dev"}
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + pick(domains)
}

func sentence(minWords, maxWords int) string {
	count := intBetween(minWords, maxWords)
	words := make([]string, count)
	for i := range words {
		words[i] = pick(loremWords)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

func paragraph() string {
	sentences := make([]string, intBetween(3, 5))
	for i := range sentences {
		sentences[i] = sentence(6, 12)
	}
	return strings.Join(sentences, " ")
}

func paragraphs(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = paragraph()
	}
	return strings.Join(parts, "\n\n")
}

func streetAddress() string {
	return fmt.Sprintf("%d %s %s", intBetween(1, 999), pick(streetNames), pick(streetSuffixes))
}

func phoneNumber() string {
	return fmt.Sprintf("+1-555-%03d-%04d", intBetween(100, 999), intBetween(0, 9999))
}

func imageURL() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/640/480", intBetween(1, 100000))
}

func avatarURL() string {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%d", intBetween(1, 100000))
}

// recentDate returns a timestamp within the last maxDays days.
func recentDate(maxDays int) string {
	offset := time.Duration(mathrand.Int64N(int64(maxDays) * int64(24*time.Hour)))
	return time.Now().UTC().Add(-offset).Format(time.RFC3339)
}

// pastDate returns a timestamp within the last maxYears years.
func pastDate(maxYears int) string {
	return recentDate(maxYears * 365)
}

// soonDate returns a timestamp within the next maxDays days.
func soonDate(maxDays int) string {
	offset := time.Duration(mathrand.Int64N(int64(maxDays) * int64(24*time.Hour)))
	return time.Now().UTC().Add(offset).Format(time.RFC3339)
}
