/**
 * Funciones auxiliares para el manejo de expresiones regulares y simulación de AFN/AFD.
 */

package auxiliar

import (
	"fmt"
	"strings"

	"github.com/projectdiscovery/gologger"

	"github.com/ntabris/py-regex-parser/internal/ast"
	"github.com/ntabris/py-regex-parser/internal/dfa"
	"github.com/ntabris/py-regex-parser/internal/graphviz"
	"github.com/ntabris/py-regex-parser/internal/iox"
	"github.com/ntabris/py-regex-parser/internal/nfa"
	"github.com/ntabris/py-regex-parser/internal/parser"
	"github.com/ntabris/py-regex-parser/internal/runner"
)

/*
PrintAllResults muestra todos los resultados asociados a una expresión regular en particular,
incluyendo la expresión regular original, el AST y el AFN.
Parámetros:
- index: Índice de la expresión regular en la lista.
- erList: Lista de expresiones regulares.
- astList: Lista de árboles de sintaxis abstracta (AST) generados a partir de las expresiones regulares.
- nfaList: Lista de AFNs generados a partir de los AST.
Retorno: Ninguno.
*/
func PrintAllResults(index int, erList []string, astList []*ast.Node, nfaList []*nfa.NFA) {
	if index < 0 || index >= len(erList) {
		fmt.Println("Índice fuera de rango")
		return
	}

	fmt.Printf("==================================\n")
	fmt.Printf("| RESULTADOS PARA LA POSICIÓN %d |\n", index)
	fmt.Printf("==================================\n")

	// Imprime la línea leída
	fmt.Printf("\nExpresión regular leída %d: %s\n", index+1, erList[index])

	// Imprime el AST
	fmt.Println("\nEl AST resultante es:")
	PrintASTTree(astList[index], 0)

	// Imprime el NFA
	fmt.Println("\nEl NFA resultante es:")
	PrintNFA(nfaList[index])
}

/*
PrintASTTree imprime el árbol de sintaxis abstracta (AST) de forma recursiva,
mostrando cada nodo y su nivel de profundidad en el árbol.
Parámetros:
- node: Nodo actual del AST.
- level: Nivel de profundidad actual en el árbol.
Retorno: Ninguno.
*/
func PrintASTTree(node *ast.Node, level int) {
	if node == nil {
		return
	}
	switch node.Kind {
	case ast.Char:
		fmt.Printf("%sChar: %s\n", indent(level), string(node.Value))
	case ast.Group:
		fmt.Printf("%sGroup\n", indent(level))
		PrintASTTree(node.Child, level+1)
	case ast.Unity:
		fmt.Printf("%sUnity\n", indent(level))
		PrintASTTree(node.Child, level+1)
	case ast.Quality:
		quantifier := "ninguno"
		if node.Quantifier != 0 {
			quantifier = string(node.Quantifier)
		}
		fmt.Printf("%sQuality (cuantificador: %s)\n", indent(level), quantifier)
		PrintASTTree(node.Child, level+1)
	case ast.Concat:
		fmt.Printf("%sConcat\n", indent(level))
		for _, item := range node.Items {
			PrintASTTree(item, level+1)
		}
	case ast.Disj:
		fmt.Printf("%sDisj\n", indent(level))
		for _, item := range node.Items {
			PrintASTTree(item, level+1)
		}
	}
}

/*
PrintNFA imprime la estructura del AFN, mostrando el estado inicial, el estado final,
y todas las transiciones entre estados.

Parámetros:
  - n: Un puntero al AFN que se desea imprimir.

Retorno: Ninguno.
*/
func PrintNFA(n *nfa.NFA) {
	fmt.Printf("Estado inicial: s%d\n", n.Start())
	fmt.Printf("Estado final: s%d\n", n.Accept())
	fmt.Println("Transiciones:")
	for _, t := range n.Transitions() {
		fmt.Printf("  Desde: s%d -> Hasta: s%d con símbolo: %s\n", t.Source, t.Dest, t.Label)
	}
}

/*
indent genera un string de indentación basado en el nivel de profundidad,
útil para formatear la salida de árboles o estructuras anidadas.
Parámetros:
- level: Nivel de profundidad para el cual se desea generar la indentación.
Retorno:
- Un string que representa la indentación.
*/
func indent(level int) string {
	return strings.Repeat("  ", level)
}

/*
PrintDFA imprime la estructura del DFA, mostrando el estado inicial, los estados finales,
y todas las transiciones entre estados, considerando que cada estado del DFA es un conjunto
de estados del NFA.

Parámetros:
  - d: Un puntero al DFA que se desea imprimir.

Retorno: Ninguno.
*/
func PrintDFA(d *dfa.DFA) {
	fmt.Printf("Estado inicial: s%d\n", d.Start())
	fmt.Println("Estados finales:")
	for _, state := range d.Accepts() {
		fmt.Printf("  s%d\n", state)
	}

	fmt.Println("Transiciones:")
	for _, t := range d.Transitions() {
		fmt.Printf("  Desde: s%d -> Hasta: s%d con símbolo: %s\n", t.Source, t.Dest, t.Label)
	}
}

/*
InteractiveRegexSimulation es una función que permite al usuario interactuar con el programa
para construir un AST a partir de una expresión regular, un AFN a partir del AST, y luego un
AFD a partir del AFN. Además, permite simular el AFN y el AFD con una cadena de entrada
proporcionada por el usuario para verificar si pertenece al lenguaje definido por la expresión
regular.

El proceso incluye los siguientes pasos:
 1. Solicitar al usuario una expresión regular.
 2. Parsear la expresión regular para construir un AST.
 3. Construir un AFN a partir del AST.
 4. Convertir el AFN a un AFD.
 5. Renderizar y guardar la imagen del AFN y del AFD generados.
 6. Solicitar al usuario una cadena para evaluar contra el AFN y el AFD.
 7. Simular ambos autómatas con la cadena proporcionada y mostrar el resultado.

Si el usuario ingresa "0" como expresión regular, la función terminará la ejecución y saldrá del bucle.

Parámetros: Ninguno.

Retorno: Ninguno.
*/
func InteractiveRegexSimulation() {
	for {
		fmt.Print("\n➡️  Ingresa una nueva expresión regular o '0' para salir: ")
		var newRegex string
		fmt.Scanln(&newRegex)

		// Salir si el usuario ingresa "0"
		if newRegex == "0" {
			fmt.Println("\n🚪 Saliendo del programa... 🚪")
			break
		}

		// Parsea la expresión regular a un AST
		root, err := parser.Parse(newRegex)
		if err != nil {
			gologger.Error().Msgf("no se pudo parsear '%s': %v", newRegex, err)
			continue
		}

		// Construye el AFN a partir del AST
		n := nfa.FromAST(root)
		// Construye el AFD
		d := dfa.FromNFA(n)

		// Renderiza el NFA
		nfaFilename := fmt.Sprintf("./graphs/NFA/nfa_%s.png", newRegex)
		if err := graphviz.RenderPNG(graphviz.ToDotNFA(n, n.Accept()), nfaFilename); err != nil {
			gologger.Error().Msgf("error renderizando NFA: %v", err)
		} else {
			fmt.Printf("\t🌄 Grafo NFA generado exitosamente como '%s'!\n", nfaFilename)
		}

		// Renderiza el DFA
		dfaFilename := fmt.Sprintf("./graphs/DFA/dfa_%s.png", newRegex)
		if err := graphviz.RenderPNG(graphviz.ToDot(d), dfaFilename); err != nil {
			gologger.Error().Msgf("error renderizando DFA: %v", err)
		} else {
			fmt.Printf("\t🌄 Grafo DFA generado exitosamente como '%s'!\n", dfaFilename)
		}

		// Simular el AFN y el AFD con una cadena dada por el usuario
		fmt.Print("➡️  Ingresa la cadena a evaluar: ")
		var cadena string
		fmt.Scanln(&cadena)

		fmt.Printf("\t🤫 Susurro: escogiste la expresión regular '%s' para leer la cadena '%s'\n", newRegex, cadena)

		// Ejecutar la simulación del AFN y AFD con la cadena
		resultadoNFA := runner.RunNFA(n, cadena)
		resultadoDFA := runner.RunDFA(d, cadena)

		// Mostrar el resultado de la simulación
		RunnerSimulation(resultadoDFA, resultadoNFA, cadena, newRegex)
	}
}

/*
RunnerSimulation muestra el resultado de la simulación del AFN y del AFD con la cadena
proporcionada por el usuario. Dependiendo de si la cadena pertenece al lenguaje definido por
la expresión regular o no, se imprime un mensaje correspondiente.

Parámetros:
  - resultadoDFA: Resultado de la simulación del AFD.
  - resultadoNFA: Resultado de la simulación del AFN.
  - cadena: La cadena de entrada proporcionada por el usuario.
  - regex: La expresión regular utilizada para la simulación.

Retorno: Ninguno.
*/
func RunnerSimulation(resultadoDFA bool, resultadoNFA bool, cadena, regex string) {
	if resultadoNFA {
		fmt.Printf("✅ Resultado de la simulación: la cadena '%s' ∈ L(%s)\n", cadena, regex)
	} else {
		fmt.Printf("❌ Resultado de la simulación: la cadena '%s' ∉ L(%s)\n", cadena, regex)
	}
	if resultadoNFA != resultadoDFA {
		gologger.Error().Msgf("el AFN y el AFD no coinciden para '%s' en '%s'", cadena, regex)
	}
	fmt.Println("\n-----------------------------------------")
}

/*
ProcessRegexFromFile lee expresiones regulares desde un archivo de texto, construye el AST,
el AFN y el AFD para cada una, y finalmente renderiza las imágenes correspondientes. Además,
guarda los resultados de cada paso en una lista.

Parámetros:
  - filePath: Ruta del archivo de texto que contiene las expresiones regulares.

Retorno:
  - []RegexProcessResult: Lista de resultados que incluye la expresión regular original, el
    AST generado, el NFA y el DFA.
  - error: Error en caso de que ocurra algún problema durante la lectura del archivo.
*/
func ProcessRegexFromFile(filePath string) ([]RegexProcessResult, error) {
	var results []RegexProcessResult

	// Llama a la función de lectura de archivo
	lines, err := iox.ReaderTXT(filePath)
	if err != nil {
		return nil, err
	}

	// Procesa cada línea leída del archivo
	for index, line := range lines {
		fmt.Printf("\nExpresión Regular: %s\n", line)

		root, err := parser.Parse(line)
		if err != nil {
			gologger.Error().Msgf("no se pudo parsear la línea %d ('%s'): %v", index, line, err)
			continue
		}

		// Construir el NFA
		n := nfa.FromAST(root)

		// Convertir a DFA
		d := dfa.FromNFA(n)

		// Renderizar el NFA
		nfaFilename := fmt.Sprintf("./graphs/NFA/nfa_%d_%s.png", index, line)
		if err := graphviz.RenderPNG(graphviz.ToDotNFA(n, n.Accept()), nfaFilename); err != nil {
			gologger.Error().Msgf("error renderizando NFA: %v", err)
		}

		// Renderizar el DFA
		dfaFilename := fmt.Sprintf("./graphs/DFA/dfa_%d_%s.png", index, line)
		if err := graphviz.RenderPNG(graphviz.ToDot(d), dfaFilename); err != nil {
			gologger.Error().Msgf("error renderizando DFA: %v", err)
		}

		// Agregar el resultado al listado
		results = append(results, RegexProcessResult{
			OriginalRegex: line,
			AST:           root,
			NFA:           n,
			DFA:           d,
		})
	}

	return results, nil
}

/*
RegexProcessResult contiene los resultados del procesamiento de una expresión regular.

Campos:
  - OriginalRegex: La expresión regular original leída del archivo.
  - AST: El árbol sintáctico abstracto (AST) construido a partir de la expresión.
  - NFA: El autómata finito no determinista (AFN) generado a partir del AST.
  - DFA: El autómata finito determinista (AFD) convertido desde el AFN.
*/
type RegexProcessResult struct {
	OriginalRegex string
	AST           *ast.Node
	NFA           *nfa.NFA
	DFA           *dfa.DFA
}
