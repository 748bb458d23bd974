package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	Yield(c echo.Context) error
}
