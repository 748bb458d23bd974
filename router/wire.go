package router

import (
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"

	// Weather
	weatherCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/controllerImp"
	weatherRepoImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/repositoryImp"
	weatherSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/serviceImp"
	weatherSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/service"

	// Soil
	soilCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/controllerImp"
	soilRepoImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/repositoryImp"
	soilSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/serviceImp"
	soilSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/service"

	// Crop
	cropCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/controllerImp"
	cropRepoImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/repositoryImp"
	cropSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/serviceImp"
	cropSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/service"

	// Pest
	pestCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/controllerImp"
	pestRepoImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repositoryImp"
	pestSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/serviceImp"
	pestSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/service"

	// Advisory
	advCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/controllerImp"
	advRepoImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/repositoryImp"
	advSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/serviceImp"
	advSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/service"

	// Dashboard + report
	dashCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/controllerImp"
	dashSvcImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/serviceImp"
	dashSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/service"
	reportCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/report/controllerImp"

	// Live + health
	healthCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/health/controllerImp"
	liveCtrlImp "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/live/controllerImp"
)

// Services are the database backed services behind the stored endpoints.
type Services struct {
	Weather   weatherSvc.WeatherService
	Soil      soilSvc.SoilService
	Crop      cropSvc.CropService
	Pest      pestSvc.PestService
	Advisory  advSvc.AdvisoryService
	Dashboard dashSvc.DashboardService
}

func NewServices(db *gorm.DB, engine rules.RulesEngine) Services {
	wRepo := weatherRepoImp.New(db)
	sRepo := soilRepoImp.New(db)

	s := Services{
		Weather:  weatherSvcImp.NewWeatherService(wRepo),
		Soil:     soilSvcImp.NewSoilService(sRepo),
		Crop:     cropSvcImp.NewCropService(cropRepoImp.New(db)),
		Pest:     pestSvcImp.NewPestService(pestRepoImp.New(db)),
		Advisory: advSvcImp.NewAdvisoryService(advRepoImp.New(db), wRepo, sRepo, engine),
	}
	s.Dashboard = dashSvcImp.NewDashboardService(dashSvcImp.Deps{
		Weather:  s.Weather,
		Soil:     s.Soil,
		Crop:     s.Crop,
		Pest:     s.Pest,
		Advisory: s.Advisory,
	})
	return s
}

// Build wires repositories, services and controllers over db. The live
// endpoints read agg directly.
func Build(db *gorm.DB, agg *aggregator.Aggregator, engine rules.RulesEngine, live liveCtrlImp.Defaults) Controllers {
	s := NewServices(db, engine)
	return Controllers{
		Weather:   weatherCtrlImp.New(s.Weather),
		Soil:      soilCtrlImp.New(s.Soil),
		Crop:      cropCtrlImp.New(s.Crop),
		Pest:      pestCtrlImp.New(s.Pest),
		Advisory:  advCtrlImp.New(s.Advisory),
		Dashboard: dashCtrlImp.New(s.Dashboard),
		Report:    reportCtrlImp.New(s.Dashboard),
		Live:      liveCtrlImp.New(agg, engine, live),
		Health:    healthCtrlImp.NewHealthCtrl(db, agg.Store()),
	}
}
