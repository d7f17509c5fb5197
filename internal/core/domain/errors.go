package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrSessionExpired = errors.New("session expired")

var ErrBookNotFound = errors.New("book not found")
var ErrPostNotFound = errors.New("blog post not found")
var ErrAddressNotFound = errors.New("address not found")
var ErrCartItemNotFound = errors.New("cart item not found")
var ErrPurchaseNotFound = errors.New("purchase not found")

var ErrEmptyCart = errors.New("cart is empty")
var ErrCouponCodeRequired = errors.New("coupon code is required")
var ErrBillingAddressRequired = errors.New("billing address is required")
