package model_test

import (
	"testing"

	"github.com/campusnest/backend/constant"
	"github.com/campusnest/backend/model"
)

func TestServiceCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog model.ServiceCatalog
		wantErr bool
	}{
		{
			name: "food variant matches food category",
			catalog: model.ServiceCatalog{
				Category: constant.CategoryFood,
				Food:     &model.FoodCatalog{Cuisine: "North Indian"},
			},
		},
		{
			name: "empty catalog is valid for any category",
			catalog: model.ServiceCatalog{
				Category: constant.CategoryLaundry,
			},
		},
		{
			name: "generic variant for out-of-vocabulary category",
			catalog: model.ServiceCatalog{
				Category: "Wellness - Yoga",
				Generic:  model.JSONMap{"sessions": "weekly"},
			},
		},
		{
			name: "variant does not match category",
			catalog: model.ServiceCatalog{
				Category: constant.CategoryFood,
				Laundry:  &model.LaundryCatalog{PricePerKg: 60},
			},
			wantErr: true,
		},
		{
			name: "two variants set",
			catalog: model.ServiceCatalog{
				Category: constant.CategoryFood,
				Food:     &model.FoodCatalog{},
				Water:    &model.WaterCatalog{},
			},
			wantErr: true,
		},
		{
			name: "typed variant on out-of-vocabulary category",
			catalog: model.ServiceCatalog{
				Category: "Wellness - Yoga",
				Food:     &model.FoodCatalog{},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
