package InputParameters

// Deck shared by the package tests
var airDeck = []byte(`
Title: "Air mixing layer"
K: 40
Length: 0.01
Diffusivity: 2.e-5
DT: 1.e-3
FinalTime: 0.05
Solver: direct
BCs:
  Left: neuman
  Right: dirichlet
Left:
  T: 300
  MassFractions:
    N2: 0.767
    O2: 0.233
Right:
  T: 1500
  MassFractions:
    N2: 0.9
    INERT: 0.1
Thermo:
  Species:
    - Name: N2
      Type: nasa7
      MW: 28.0134
      MinT: 300
      MaxT: 5000
      Tmid: 1000
      Low: [3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372]
      High: [2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528]
    - Name: O2
      Type: NASA7
      MW: 31.998
      MinT: 200
      MaxT: 3500
      Tmid: 1000
      Low: [3.78245636, -2.99673416e-3, 9.84730201e-6, -9.68129509e-9, 3.24372837e-12, -1063.94356, 3.65767573]
      High: [3.28253784, 1.48308754e-3, -7.57966669e-7, 2.09470555e-10, -2.16717794e-14, -1088.45772, 5.45323129]
    - Name: INERT
      Type: constant
      MW: 10
      Tref: 300
      Href: 1000
      Cp: 2000
`)
