package controller

import "github.com/labstack/echo/v4"

type SoilController interface {
	Health(c echo.Context) error
}
