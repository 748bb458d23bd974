package controller

import "github.com/labstack/echo/v4"

type PestController interface {
	List(c echo.Context) error
}
