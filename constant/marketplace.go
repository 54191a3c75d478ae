package constant

type ContextKey string

const UserKey ContextKey = "user"

// Role is the account type chosen at registration.
type Role string

const (
	RoleVendor   Role = "vendor"
	RoleSupplier Role = "supplier"
)

// View is the top-level screen a session is routed to.
type View string

const (
	ViewLanding     View = "landing"
	ViewMarketplace View = "marketplace"
	ViewDashboard   View = "dashboard"
)

// Durable storage keys, written and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// Categories accepted by the product form.
var Categories = []string{"Vegetables", "Fruits", "Spices", "Herbs"}

// Dashboard tabs.
const (
	TabOverview  = "overview"
	TabProducts  = "products"
	TabOrders    = "orders"
	TabAnalytics = "analytics"
)

var DashboardTabs = []string{TabOverview, TabProducts, TabOrders, TabAnalytics}

const (
	DefaultProductImage = "https://images.unsplash.com/photo-1550989460-0adf9ea622e2"
	DefaultStallImage   = "https://images.unsplash.com/photo-1532079563951-0c8a7dacddb3"
	DefaultProductUnit  = "kg"
)

// User facing messages.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegisterFailed     = "Registration failed"
	MsgLoginToAddCart     = "Please login to add items to cart"
	MsgAddCartFailed      = "Failed to add item to cart"
	MsgRemoveCartFailed   = "Failed to remove item from cart"
	MsgUpdateCartFailed   = "Failed to update cart"
	MsgLoadCartFailed     = "Failed to load cart"
	MsgReviewFailed       = "Failed to submit review"
	MsgCreateStallFailed  = "Failed to create stall"
	MsgAddProductFailed   = "Failed to add product"
	MsgDeleteProductFail  = "Failed to delete product"
	MsgConfirmDelete      = "Are you sure you want to delete this product?"
	MsgNoSuppliersMatch   = "No suppliers match your filters"
	MsgLoadSuppliersFail  = "Failed to load suppliers"
	MsgLoadProductsFail   = "Failed to load products"
	MsgLoadReviewsFail    = "Failed to load reviews"
	MsgLoadNotifFailed    = "Failed to load notifications"
	MsgMarkReadFailed     = "Failed to mark notification as read"
	MsgLoadDashboardFail  = "Failed to load supplier dashboard"
	MsgSupplierNotInList  = "Supplier not found"
	MsgProductNotInView   = "Product not found"
	MsgInvalidPrice       = "Price must be a decimal number"
	MsgInvalidQuantity    = "Quantity must be a whole number"
	MsgUnknownTab         = "Unknown dashboard tab"
	MsgSessionStoreFailed = "Could not save session"
	MsgVendorsOnlyReview  = "Only vendors can create reviews"
)

// Activity events published to the message broker.
const (
	ActivityExchange     = "micromarket.activity"
	ActivityCartChanged  = "cart.changed"
	ActivityReviewSubmit = "review.submitted"
	ActivitySessionLogin = "session.login"
)
