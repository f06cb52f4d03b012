// Simulator walks the whole storefront flow against a running instance:
// seed the catalog as a seller, quote shipping, build an order as a
// customer and advance it to delivery.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type product struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	WeightKg  float64 `json:"weight_kg"`
}

type order struct {
	OrderID       int64    `json:"order_id"`
	Products      []string `json:"products"`
	ProductsTotal float64  `json:"products_total"`
	ShippingCost  float64  `json:"shipping_cost"`
	TotalPrice    float64  `json:"total_price"`
	Status        string   `json:"status"`
}

type advanceResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "storefront base url")
	flag.Parse()

	seed := []map[string]any{
		{"name": "Design Patterns Book", "price": 120.50, "weight_kg": 0.5},
		{"name": "Mechanical Keyboard", "price": 350.00, "weight_kg": 1.2},
		{"name": "Wireless Mouse", "price": 180.75, "weight_kg": 0.3},
	}

	var products []product
	for _, p := range seed {
		var created product
		if err := post(*baseURL+"/products", p, &created, "seller"); err != nil {
			log.Fatalf("failed to seed product: %v", err)
		}
		products = append(products, created)
		log.Printf("product #%d %q seeded", created.ProductID, created.Name)
	}

	var created order
	body := map[string]any{
		"customer_id": "customer-42",
		"items": []map[string]any{
			{"product_id": products[0].ProductID, "quantity": 1},
			{"product_id": products[2].ProductID, "quantity": 2},
		},
		"shipping": map[string]any{"method": "sedex", "distance_km": 350.0},
	}
	if err := post(*baseURL+"/orders", body, &created, ""); err != nil {
		log.Fatalf("failed to create order: %v", err)
	}
	log.Printf("order #%d created: status=%s products_total=%.2f shipping=%.2f total=%.2f",
		created.OrderID, created.Status, created.ProductsTotal, created.ShippingCost, created.TotalPrice)

	for i := 0; i < 4; i++ {
		var adv advanceResponse
		url := fmt.Sprintf("%s/orders/%d/advance", *baseURL, created.OrderID)
		if err := post(url, nil, &adv, ""); err != nil {
			log.Fatalf("failed to advance order: %v", err)
		}
		log.Printf("order #%d advanced: status=%s", adv.OrderID, adv.Status)
	}

	var final order
	if err := get(fmt.Sprintf("%s/orders/%d", *baseURL, created.OrderID), &final); err != nil {
		log.Fatalf("failed to get order: %v", err)
	}
	log.Printf("final status of order #%d: %s", final.OrderID, final.Status)
}

func post(url string, body any, out any, role string) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Actor-Role", role)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func get(url string, out any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
