package geo

import "math"

const earthRadiusKm = 6371

// Distance retorna a distância em km entre dois pontos (haversine),
// arredondada para 2 casas decimais. Coordenadas fora do intervalo
// físico não são validadas.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlng := radians(lng2 - lng1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlng/2)*math.Sin(dlng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusKm * c)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
