package domain

import "fmt"

// CoordinatePrompt builds the model prompt for a coordinate analysis request.
func CoordinatePrompt(lat, lon float64) string {
	return fmt.Sprintf(`Analyze flood risk for location at latitude %v, longitude %v.

Provide detailed assessment including:
1. Risk Level (Low/Medium/High/Very High)
2. Description of risk factors
3. 3-5 specific recommendations
4. Estimated elevation in meters
5. Estimated distance from nearest water body in meters
6. Detailed analysis of terrain and flood risk factors

Format response as JSON with these fields:
- risk_level
- description
- recommendations (array)
- elevation (number)
- distance_from_water (number)
- analysis (detailed text)`, lat, lon)
}

// ImagePrompt is the fixed prompt for terrain image analysis. It carries no
// request-specific interpolation; the raster itself is the variable input.
const ImagePrompt = `Analyze this terrain image for flood risk assessment.
Provide detailed assessment including:
1. Risk Level (Low/Medium/High/Very High)
2. Description of visible risk factors
3. 3-5 specific recommendations
4. Estimated elevation in meters
5. Estimated distance from visible water bodies
6. Detailed analysis of what you observe

Format response as JSON with these fields:
- risk_level
- description
- recommendations (array)
- elevation (number)
- distance_from_water (number)
- analysis (detailed text)`
