package stubapi

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route the client knows about onto a gin
// engine. The route shapes (including the mixed /api prefixes) match
// the production gateway exactly so the client needs no stub-specific
// configuration.
func NewRouter(s *Server) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/auth/login", s.Login)

	catalog := r.Group("/api")
	{
		catalog.GET("/catalogo", s.Catalog)
		catalog.GET("/catalogo/buscar", s.SearchCatalog)
		catalog.GET("/inventarios/stock-sucursal-producto", s.Stock)
		catalog.GET("/clientes/:ci", s.CustomerByCI)
		catalog.POST("/clientes", s.CreateCustomer)
	}

	authed := r.Group("/")
	authed.Use(s.AuthMiddleware())
	{
		productos := authed.Group("/productos")
		{
			productos.GET("/obtener-nombre/:id", s.ProductName)
			productos.GET("/obtener-precio/:id", s.ProductPrice)
		}

		ventas := authed.Group("/ventas")
		{
			ventas.GET("/completadas", s.SalesByStatus("COMPLETADA"))
			ventas.GET("/pendientes", s.SalesByStatus("PENDIENTE"))
			ventas.GET("/en-proceso", s.SalesByStatus("EN_PROCESO"))
			ventas.GET("/pagando-credito", s.SalesByStatus("PAGANDO_CREDITO"))
			ventas.GET("/canceladas", s.SalesByStatus("CANCELADA"))
			ventas.GET("/:id", s.Sale)
			ventas.POST("", s.CreateSale)
			ventas.DELETE("/:id", s.CancelSale)
		}

		pagos := authed.Group("/pagos")
		{
			pagos.POST("/pago-venta", s.CreatePayment)
			pagos.GET("", s.Payments)
			pagos.GET("/:id", s.Payment)
		}

		inventarios := authed.Group("/inventarios")
		{
			inventarios.GET("", s.Inventories)
			inventarios.GET("/sucursal/:id", s.InventoriesByBranch)
			inventarios.GET("/:id", s.Inventory)
			inventarios.POST("", s.CreateInventory)
			inventarios.PUT("/:id", s.UpdateInventory)
			inventarios.DELETE("/:id", s.DeleteInventory)
		}

		usuarios := authed.Group("/usuarios")
		{
			usuarios.GET("", s.Users)
			usuarios.GET("/:id", s.User)
			usuarios.POST("", s.CreateUser)
			usuarios.PUT("/:id", s.UpdateUser)
			usuarios.DELETE("/:id", s.DeleteUser)
		}

		authed.GET("/sucursales", s.Branches)
		authed.GET("/planes-credito", s.CreditPlans)

		ia := authed.Group("/ia")
		{
			ia.POST("/reportes/productos/", s.ProductReport)
			ia.POST("/reportes/ventas/", s.SalesReport)
			ia.GET("/prediccion", s.Prediction)
		}
	}

	return r
}

// AuthMiddleware rejects requests without a valid bearer token. Any
// parse or signature failure is a 401, which is exactly what the
// client's forced-logout path listens for.
func (s *Server) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("claims", claims)
		}
		c.Next()
	}
}
