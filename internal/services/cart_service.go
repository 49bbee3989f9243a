package services

import (
	"errors"
	"fmt"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

// CartOwner identifies whose cart an operation targets: an authenticated
// user or an anonymous storefront session.
type CartOwner struct {
	UserID    string
	SessionID string
}

func (o CartOwner) valid() bool {
	return o.UserID != "" || o.SessionID != ""
}

type CartService struct {
	carts     *repository.CartRepository
	wishlists *repository.WishlistRepository
	products  *repository.ProductRepository
}

func NewCartService(carts *repository.CartRepository, wishlists *repository.WishlistRepository, products *repository.ProductRepository) *CartService {
	return &CartService{carts: carts, wishlists: wishlists, products: products}
}

// Get returns the owner's cart enriched with current product data. A missing
// cart is an empty cart, not an error.
func (s *CartService) Get(owner CartOwner) (*models.EnrichedCart, error) {
	cart, err := s.findCart(owner)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &models.EnrichedCart{Items: []models.EnrichedCartItem{}}, nil
		}
		return nil, err
	}
	return s.enrich(cart)
}

func (s *CartService) Add(owner CartOwner, req models.AddToCartRequest) (*models.EnrichedCart, error) {
	product, err := s.products.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.findOrCreateCart(owner)
	if err != nil {
		return nil, err
	}

	items := cart.Items
	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity += req.Quantity
			if items[i].Quantity > product.Stock {
				return nil, models.ErrOutOfStock
			}
			found = true
			break
		}
	}
	if !found {
		if req.Quantity > product.Stock {
			return nil, models.ErrOutOfStock
		}
		items = append(items, models.CartItem{ProductID: req.ProductID, Quantity: req.Quantity})
	}

	if err := s.carts.UpdateItems(cart.CartID, items); err != nil {
		return nil, err
	}
	cart.Items = items
	return s.enrich(cart)
}

// Update sets the quantity of one cart line. Quantity zero removes the line.
func (s *CartService) Update(owner CartOwner, req models.UpdateCartItemRequest) (*models.EnrichedCart, error) {
	cart, err := s.findCart(owner)
	if err != nil {
		return nil, err
	}

	if req.Quantity > 0 {
		product, err := s.products.GetByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		if req.Quantity > product.Stock {
			return nil, models.ErrOutOfStock
		}
	}

	items := models.CartItemList{}
	found := false
	for _, item := range cart.Items {
		if item.ProductID == req.ProductID {
			found = true
			if req.Quantity > 0 {
				item.Quantity = req.Quantity
				items = append(items, item)
			}
			continue
		}
		items = append(items, item)
	}
	if !found {
		return nil, models.ErrNotFound
	}

	if err := s.carts.UpdateItems(cart.CartID, items); err != nil {
		return nil, err
	}
	cart.Items = items
	return s.enrich(cart)
}

func (s *CartService) Remove(owner CartOwner, productID string) (*models.EnrichedCart, error) {
	return s.Update(owner, models.UpdateCartItemRequest{ProductID: productID, Quantity: 0})
}

func (s *CartService) Clear(owner CartOwner) error {
	cart, err := s.findCart(owner)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}
	return s.carts.UpdateItems(cart.CartID, models.CartItemList{})
}

func (s *CartService) findCart(owner CartOwner) (*models.Cart, error) {
	if !owner.valid() {
		return nil, fmt.Errorf("cart owner missing: %w", models.ErrNotFound)
	}
	if owner.UserID != "" {
		return s.carts.GetByUser(owner.UserID)
	}
	return s.carts.GetBySession(owner.SessionID)
}

func (s *CartService) findOrCreateCart(owner CartOwner) (*models.Cart, error) {
	cart, err := s.findCart(owner)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{
		CartID: utils.GenerateEntityID("cart_", 12, false),
		Items:  models.CartItemList{},
	}
	if owner.UserID != "" {
		cart.UserID = &owner.UserID
	} else {
		cart.SessionID = &owner.SessionID
	}

	if err := s.carts.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) enrich(cart *models.Cart) (*models.EnrichedCart, error) {
	enriched := &models.EnrichedCart{
		CartID: cart.CartID,
		Items:  []models.EnrichedCartItem{},
	}

	for _, item := range cart.Items {
		product, err := s.products.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// Product removed from catalog since it was added.
				continue
			}
			return nil, err
		}

		lineTotal := product.Price * int64(item.Quantity)
		enriched.Items = append(enriched.Items, models.EnrichedCartItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Images:    product.Images,
			Stock:     product.Stock,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		enriched.Total += lineTotal
	}

	return enriched, nil
}

// ---------------------------------------------------------------------------
// Wishlist
// ---------------------------------------------------------------------------

func (s *CartService) GetWishlist(userID string) ([]models.Product, error) {
	wishlist, err := s.wishlists.Get(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return []models.Product{}, nil
		}
		return nil, err
	}

	products := []models.Product{}
	for _, productID := range wishlist.Items {
		product, err := s.products.GetByID(productID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

func (s *CartService) AddToWishlist(userID, productID string) error {
	if _, err := s.products.GetByID(productID); err != nil {
		return err
	}

	items := models.StringList{}
	wishlist, err := s.wishlists.Get(userID)
	if err == nil {
		items = wishlist.Items
	} else if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	for _, existing := range items {
		if existing == productID {
			return nil
		}
	}
	items = append(items, productID)

	return s.wishlists.Upsert(userID, items)
}

func (s *CartService) RemoveFromWishlist(userID, productID string) error {
	wishlist, err := s.wishlists.Get(userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	items := models.StringList{}
	for _, existing := range wishlist.Items {
		if existing != productID {
			items = append(items, existing)
		}
	}

	return s.wishlists.Upsert(userID, items)
}
