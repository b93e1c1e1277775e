package hwsd

import "github.com/stactools-packages/hwsd/pkg/stac"

// Core identifiers for the Harmonized World Soil Database collection.
const (
	ID          = "hwsd"
	EPSG        = 4326
	Title       = "Harmonized World Soil Database"
	Description = "This data set describes select global soil parameters from the Harmonized World Soil Database (HWSD) v1.2, including additional calculated parameters such as area weighted soil organic carbon (kg C per m2), as high resolution NetCDF files. These data were regridded and upscaled from the Harmonized World Soil Database v1.2."

	License = "proprietary"

	HomepageFAO       = "https://www.fao.org/soils-portal/data-hub/soil-maps-and-databases/harmonized-world-soil-database-v12"
	HomepageIIASA     = "http://webarchive.iiasa.ac.at/Research/LUC/External-World-soil-database/HTML/SoilQualityData.html?sb=11"
	HomepageRegridded = "https://daac.ornl.gov/SOILS/guides/HWSD.html"
	Documentation     = "http://daac.ornl.gov/daacdata/global_soil/HWSD/comp/HWSD1.2_documentation.pdf"
	Thumbnail         = "https://daac.ornl.gov/SOILS/guides/HWSD_Fig1.png"

	DOI      = "10.3334/ORNLDAAC/1247"
	Citation = "Wieder, W.R., J. Boehnert, G.B. Bonan, and M. Langseth. 2014. Regridded Harmonized World Soil Database v1.2. Data set. Available on-line [http://daac.ornl.gov] from Oak Ridge National Laboratory Distributed Active Archive Center, Oak Ridge, Tennessee, USA. http://dx.doi.org/10.3334/ORNLDAAC/1247 ."

	// NoData is the nodata sentinel shared by every regridded raster.
	NoData = -1
)

// WKT2 is the well-known text for EPSG:4326, the CRS of every HWSD raster.
const WKT2 = `GEOGCRS["WGS 84",DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563,LENGTHUNIT["metre",1]]],PRIMEM["Greenwich",0,ANGLEUNIT["degree",0.0174532925199433]],CS[ellipsoidal,2],AXIS["geodetic latitude (Lat)",north,ORDER[1],ANGLEUNIT["degree",0.0174532925199433]],AXIS["geodetic longitude (Lon)",east,ORDER[2],ANGLEUNIT["degree",0.0174532925199433]],ID["EPSG",4326]]`

var (
	// SpatialExtent is the global bounding box of the regridded rasters,
	// kept in the dataset's native top-down vertex order.
	SpatialExtent = []float64{-180, 90, 180, -90}

	// TemporalExtent covers the nominal year of the regridded release.
	TemporalExtent = [2]string{"2000-01-01T00:00:00Z", "2000-12-31T23:59:59Z"}

	// Shape is the grid size of the regridded 0.05-degree rasters (rows, cols).
	Shape = []int{3600, 7200}

	// Transform is the affine geotransform of the regridded grid.
	Transform = []float64{0.05, 0, -180, 0, -0.05, 90}
)

// LicenseLink points at the EOSDIS data use policy.
var LicenseLink = &stac.Link{
	Rel:   stac.RelLicense,
	Href:  "https://earthdata.nasa.gov/earth-observation-data/data-use-policy",
	Title: "EOSDIS Data Use Policy",
}

// Keywords applied to the collection.
var Keywords = []string{"HWSD", "Soil", "Soils", "Harmonized World Soil Database", "regridded"}

// Providers lists the organisations behind the dataset.
var Providers = []*stac.Provider{
	{
		Name:  "FAO",
		Roles: []string{stac.RoleHost, stac.RoleLicensor, stac.RoleProcessor, stac.RoleProducer},
		Url:   "https://www.fao.org/",
	},
	{
		Name:  "IIASA",
		Roles: []string{stac.RoleLicensor, stac.RoleProducer},
		Url:   "https://iiasa.ac.at/",
	},
	{
		Name:  "ISRIC",
		Roles: []string{stac.RoleLicensor, stac.RoleProducer},
		Url:   "https://www.isric.org/",
	},
	{
		Name:  "ISS-CAS",
		Roles: []string{stac.RoleLicensor, stac.RoleProducer},
		Url:   "http://english.issas.cas.cn/",
	},
	{
		Name:  "JRC",
		Roles: []string{stac.RoleLicensor, stac.RoleProducer},
		Url:   "https://esdac.jrc.ec.europa.eu/",
	},
	{
		Name:  "ORNL",
		Roles: []string{stac.RoleHost, stac.RoleProcessor},
		Url:   "https://www.ornl.gov/",
	},
	{
		Name:  "NCAR",
		Roles: []string{stac.RoleProducer, stac.RoleProcessor},
		Url:   "https://ncar.ucar.edu/",
	},
	{
		Name:  "Microsoft",
		Roles: []string{stac.RoleHost, stac.RoleProcessor},
		Url:   "https://planetarycomputer.microsoft.com",
	},
}

// Parameter describes one soil parameter raster of the regridded HWSD.
type Parameter struct {
	Name        string
	Description string
	Units       string
	Notes       string
	DataType    stac.DataType
}

// Parameters lists every soil parameter raster in the dataset, in the
// order used by the source documentation.
var Parameters = []Parameter{
	{
		Name:        "AWC_CLASS",
		Description: "Available water storage capacity",
		Units:       "Coded values 1 through 7",
		Notes:       "1 = 150 mm water per m of the soil unit, 2 = 125 mm, 3 = 100 mm, 4 = 75 mm, 5 = 50 mm, 6 = 15 mm, 7 = 0 mm.",
		DataType:    stac.DataTypeInt16,
	},
	{
		Name:        "ISSOIL",
		Description: "Soil or non-soil units",
		Units:       "0 or 1",
		Notes:       "ISSOIL indicates whether the soil mapping unit is a soil (1) or non-soil (0)",
		DataType:    stac.DataTypeInt16,
	},
	{
		Name:        "MU_GLOBAL",
		Description: "HWSD global mapping unit identifier",
		Units:       "numerical ID",
		Notes:       "MU_GLOBAL provides a link from the grid cell to the other attributes. The HWSD v1.2 attribute lookup table is available from the HWSD project (FAO 2012)",
		DataType:    stac.DataTypeInt32,
	},
	{
		Name:        "REF_DEPTH",
		Description: "Reference soil depth",
		Units:       "cm",
		Notes:       "Reference soil depth of all soil units are set at 100 cm, except for Rendzinas and Rankers of FAO-74 and Leptosols of FAO-90, where the reference soil depth is set at 30 cm, and for Lithosols of FAO-74 and Lithic Leptosols of FAO-90, where it is set at 10 cm.",
		DataType:    stac.DataTypeInt16,
	},
	{
		Name:        "ROOTS",
		Description: "Depth of obstacles to roots",
		Units:       "Coded values 0 through 6",
		Notes:       "0 = no information, 1 = no obstacles to roots between 0 and 80 cm depth, 2 = obstacles to roots between 60 and 80 cm depth, 3 = obstacles between 40 and 60 cm, 4 = 20 and 40 cm, 5 = 0 and 80 cm, 6 = 0 and 20 cm.",
		DataType:    stac.DataTypeInt16,
	},
	{
		Name:        "T_BULK_DEN",
		Description: "Topsoil bulk density",
		Units:       "kg dm-3",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_BULK_DEN",
		Description: "Subsoil bulk density",
		Units:       "kg dm-3",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_REF_BULK",
		Description: "Topsoil reference bulk density",
		Units:       "kg dm-3",
		Notes:       "Reference bulk density values are calculated from equations developed by Saxton et al. (1986) that relate to the texture of the soil only. These estimates, although generally reliable, overestimate the bulk density in soils that have a high porosity (Andosols) or that are high in organic matter content (Histosols). The calculation procedures for reference bulk density can be found in Saxton et al (1986)",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_REF_BULK",
		Description: "Subsoil reference bulk density",
		Units:       "kg dm-3",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_CEC_CLAY",
		Description: "Cation exchange capacity of the clay fraction in the topsoil",
		Units:       "cmol per kg",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_CEC_CLAY",
		Description: "Cation exchange capacity of the clay fraction in the subsoil",
		Units:       "cmol per kg",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_CLAY",
		Description: "Topsoil clay fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_CLAY",
		Description: "Subsoil clay fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_GRAVEL",
		Description: "Topsoil gravel content",
		Units:       "% volume",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_GRAVEL",
		Description: "Subsoil gravel content",
		Units:       "% volume",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_SAND",
		Description: "Topsoil sand fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_SAND",
		Description: "Subsoil sand fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_SILT",
		Description: "Topsoil silt fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_SILT",
		Description: "Subsoil silt fraction",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_PH_H20",
		Description: "Topsoil pH (in H2O)",
		Units:       "-log(H+)",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_PH_H20",
		Description: "Subsoil pH (in water)",
		Units:       "-log(H+)",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_C",
		Description: "Topsoil carbon content",
		Units:       "kg C m-2",
		Notes:       "Topsoil and subsoil carbon content (T_C and S_C) are based on the carbon content of the dominant soil type in each regridded cell rather than a weighted average.",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_C",
		Description: "Dominant soil type subsoil carbon content",
		Units:       "kg C m-2",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "T_OC",
		Description: "Topsoil organic carbon",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "S_OC",
		Description: "Subsoil organic carbon",
		Units:       "% weight",
		DataType:    stac.DataTypeFloat32,
	},
	{
		Name:        "AWT_S_SOC",
		Description: "Area weighted subsoil carbon content",
		Units:       "kg C m-2",
		Notes:       "AWT_S_SOC = (sum(SEQ(SHARE * S_OC)) * 7 * S_BULK_DENSITY)",
		DataType:    stac.DataTypeFloat64,
	},
	{
		Name:        "AWT_T_SOC",
		Description: "Area weighted topsoil carbon content",
		Units:       "kg C m-2",
		Notes:       "AWT_T_SOC = (sum(SEQ(SHARE * T_OC)) * 3 * T_BULK_DENSITY)",
		DataType:    stac.DataTypeFloat64,
	},
}

// ParameterByName looks up a soil parameter by its raster name.
func ParameterByName(name string) (Parameter, bool) {
	for _, param := range Parameters {
		if param.Name == name {
			return param, true
		}
	}
	return Parameter{}, false
}
