package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartAddItem(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	cart := &Cart{}

	cart.AddItem(p1, 2)
	if len(cart.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", cart.Items[0].Quantity)
	}

	cart.AddItem(p1, 3)
	if len(cart.Items) != 1 {
		t.Fatalf("Expected merge to keep 1 item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("Expected merged quantity 5, got %d", cart.Items[0].Quantity)
	}

	cart.AddItem(p2, 1)
	if len(cart.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(cart.Items))
	}
	if cart.Items[0].ProductID != p1 || cart.Items[1].ProductID != p2 {
		t.Error("Expected items to keep first-add order")
	}
}

func TestCartAddItemUniqueness(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}

	cart := &Cart{}
	for i := 0; i < 10; i++ {
		cart.AddItem(ids[i%len(ids)], 1)
	}

	seen := map[primitive.ObjectID]bool{}
	for _, item := range cart.Items {
		if seen[item.ProductID] {
			t.Fatalf("Duplicate line item for product %s", item.ProductID.Hex())
		}
		seen[item.ProductID] = true
	}
	if len(cart.Items) != len(ids) {
		t.Errorf("Expected %d items, got %d", len(ids), len(cart.Items))
	}
}

func TestCartSetItemQuantity(t *testing.T) {
	p1 := primitive.NewObjectID()

	cart := &Cart{}
	cart.AddItem(p1, 7)

	if !cart.SetItemQuantity(p1, 2) {
		t.Fatal("Expected SetItemQuantity to find the item")
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("Expected quantity replaced with 2, got %d", cart.Items[0].Quantity)
	}

	if cart.SetItemQuantity(primitive.NewObjectID(), 1) {
		t.Error("Expected SetItemQuantity to report a missing item")
	}
}

func TestCartRemoveItem(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	cart := &Cart{}
	cart.AddItem(p1, 2)
	cart.AddItem(p2, 1)

	if !cart.RemoveItem(p1) {
		t.Fatal("Expected RemoveItem to find the item")
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != p2 {
		t.Errorf("Expected only p2 to remain, got %+v", cart.Items)
	}

	if cart.RemoveItem(p1) {
		t.Error("Expected RemoveItem to report a missing item")
	}

	// remove then add leaves no residual quantity
	cart.AddItem(p1, 4)
	if len(cart.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(cart.Items))
	}
	if cart.Items[1].ProductID != p1 || cart.Items[1].Quantity != 4 {
		t.Errorf("Expected fresh line {p1, 4}, got %+v", cart.Items[1])
	}
}
